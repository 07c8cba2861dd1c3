package middleware

import (
	"github.com/erpcore/go-fin-ledger/internal/common/flag"
	"github.com/erpcore/go-fin-ledger/internal/config"
	"github.com/erpcore/go-fin-ledger/internal/repositories"
)

type AppMiddleware struct {
	conf      config.Config
	cacheRepo repositories.CacheRepository
	flag      flag.Client
}

func NewMiddleware(
	conf config.Config,
	cacheRepo repositories.CacheRepository,
	flag flag.Client) AppMiddleware {
	return AppMiddleware{
		conf:      conf,
		cacheRepo: cacheRepo,
		flag:      flag,
	}
}
