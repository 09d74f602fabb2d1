package repoargs

type CustomerCreate struct {
	Name    string
	Phone   string
	Address string
}

type CustomerUpdate struct {
	ID      int64
	Name    string
	Phone   string
	Address string
}
