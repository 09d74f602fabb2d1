package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

// JSONBody сериализует v для тела запроса. Ошибки сериализации в тестах не ожидаются.
func JSONBody(v any) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

// DecodeJSON читает и закрывает тело ответа.
func DecodeJSON(res *http.Response, v any) error {
	defer res.Body.Close()
	return json.NewDecoder(res.Body).Decode(v) //nolint:wrapcheck
}
