//go:build wireinject

package app

import (
	"net/http"

	"github.com/google/wire"
	"github.com/gowvp/bbbrooms/internal/conf"
	"github.com/gowvp/bbbrooms/internal/data"
	"github.com/gowvp/bbbrooms/internal/web/api"
)

func wireApp(bc *conf.Bootstrap) (http.Handler, func(), error) {
	panic(wire.Build(data.ProviderSet, api.ProviderSet))
}
