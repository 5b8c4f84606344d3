package router

import "net/http"

type AccountRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux)
}

type TransferRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux)
}

func New(
	accountController AccountRouteRegistrar,
	transferController TransferRouteRegistrar,
) *http.ServeMux {
	mux := http.NewServeMux()

	if accountController != nil {
		accountController.RegisterRoutes(mux)
	}
	if transferController != nil {
		transferController.RegisterRoutes(mux)
	}

	return mux
}
