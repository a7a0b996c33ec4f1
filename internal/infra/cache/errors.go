package cache

import "errors"

var (
	// ErrCacheMiss ключ отсутствует или истек
	ErrCacheMiss = errors.New("cache: miss")

	// ErrBackend ошибка хранилища кэша
	ErrBackend = errors.New("cache: backend error")
)
