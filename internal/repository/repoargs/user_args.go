package repoargs

import "github.com/fsdevblog/tagihan/internal/domain"

type CreateUser struct {
	Username string
	Password string
	Role     domain.RoleType
}
