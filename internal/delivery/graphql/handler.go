package graphql

import (
	"log/slog"
	"net/http"

	"deliveryzone/internal/delivery/http/response"
	"deliveryzone/internal/errors"
	"deliveryzone/internal/usecase"

	gql "github.com/graphql-go/graphql"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Handler executes GraphQL requests against the delivery-zone schema.
type Handler struct {
	schema gql.Schema
}

// HandlerParams holds dependencies for Handler, injected by Fx.
type HandlerParams struct {
	fx.In

	BoundUC     usecase.DeliveryBoundUsecase
	ZoneUC      usecase.ZoneUsecase
	DiscoveryUC usecase.DiscoveryUsecase
	Logger      *slog.Logger
}

// NewHandler builds the schema once; a schema error fails startup.
func NewHandler(params HandlerParams) (*Handler, error) {
	schema, err := NewSchema(NewResolver(params.BoundUC, params.ZoneUC, params.DiscoveryUC, params.Logger))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build graphql schema")
	}

	return &Handler{schema: schema}, nil
}

// Request is the standard GraphQL-over-HTTP body.
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// Serve handles POST /graphql. Field errors are part of a 200 response.
func (h *Handler) Serve(c echo.Context) error {
	var req Request
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid GraphQL request body")
	}
	if req.Query == "" {
		return response.BadRequest(c, "INVALID_INPUT", "query is required")
	}

	result := gql.Do(gql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.Request().Context(),
	})

	return c.JSON(http.StatusOK, result)
}
