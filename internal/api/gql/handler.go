package gql

import (
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/m04kA/SMC-BookingSlotsService/internal/api/handlers"
)

const msgInvalidRequestBody = "некорректное тело запроса"

// Request тело GraphQL запроса
type Request struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
	OperationName string                 `json:"operationName,omitempty"`
}

// Handler HTTP обработчик GraphQL запросов
type Handler struct {
	schema graphql.Schema
	logger Logger
}

// NewHandler создает новый обработчик GraphQL
func NewHandler(schema graphql.Schema, logger Logger) *Handler {
	return &Handler{
		schema: schema,
		logger: logger,
	}
}

// Handle POST /graphql
// Ошибки резолверов возвращаются в поле errors со статусом 200
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil || req.Query == "" {
		h.logger.Warn("POST /graphql - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        r.Context(),
	})

	if result.HasErrors() {
		h.logger.Warn("POST /graphql - Query finished with %d errors: %v", len(result.Errors), result.Errors)
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
