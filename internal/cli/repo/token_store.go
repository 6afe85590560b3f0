package repo

// Tokens — пара токенов, выданная сервером при логине.
type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenStore описывает абстракцию хранилища токенов на клиенте.
type TokenStore interface {
	Save(t Tokens) error
	Load() (Tokens, error)
	Clear() error
}
