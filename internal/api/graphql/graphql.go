package graphql

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/validator"
	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/api/shared/executor"
	"github.com/feral-file/ff-market/internal/logger"
)

//go:embed schema.graphqls
var schemaSource string

// Handler defines the interface for GraphQL API handlers
type Handler interface {
	// HandleGraphQL answers GraphQL queries sent as POST bodies or GET parameters
	HandleGraphQL(c *gin.Context)
}

type gqlHandler struct {
	schema   *ast.Schema
	resolver *Resolver
}

// NewHandler creates the read-only GraphQL handler over the shared executor
func NewHandler(exec executor.Executor) (Handler, error) {
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphqls", Input: schemaSource})
	if err != nil {
		return nil, fmt.Errorf("failed to load GraphQL schema: %w", err)
	}

	return &gqlHandler{
		schema:   schema,
		resolver: NewResolver(exec),
	}, nil
}

// request is a GraphQL request in the usual JSON shape
type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// response carries data only once execution started
type response struct {
	Data   interface{}   `json:"data,omitempty"`
	Errors gqlerror.List `json:"errors,omitempty"`
}

// HandleGraphQL processes GraphQL queries
func (h *gqlHandler) HandleGraphQL(c *gin.Context) {
	req, err := parseRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response{Errors: gqlerror.List{gqlerror.Errorf("%s", err.Error())}})
		return
	}

	resp, status := h.execute(c.Request.Context(), req)
	c.JSON(status, resp)
}

func parseRequest(c *gin.Context) (*request, error) {
	var req request

	if c.Request.Method == http.MethodGet {
		req.Query = c.Query("query")
		req.OperationName = c.Query("operationName")
		if raw := c.Query("variables"); raw != "" {
			if err := decodeJSON(strings.NewReader(raw), &req.Variables); err != nil {
				return nil, fmt.Errorf("invalid variables: %w", err)
			}
		}
		return &req, nil
	}

	if err := decodeJSON(c.Request.Body, &req); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}
	return &req, nil
}

func (h *gqlHandler) execute(ctx context.Context, req *request) (*response, int) {
	if strings.TrimSpace(req.Query) == "" {
		return &response{Errors: gqlerror.List{gqlerror.Errorf("no query provided")}}, http.StatusUnprocessableEntity
	}

	doc, errs := gqlparser.LoadQueryWithRules(h.schema, req.Query, nil)
	if len(errs) > 0 {
		return &response{Errors: errs}, http.StatusUnprocessableEntity
	}

	op, err := selectOperation(doc, req.OperationName)
	if err != nil {
		return &response{Errors: gqlerror.List{err}}, http.StatusUnprocessableEntity
	}

	vars, verr := validator.VariableValues(h.schema, op, req.Variables)
	if verr != nil {
		return &response{Errors: gqlerror.List{gqlerror.WrapIfUnwrapped(verr)}}, http.StatusUnprocessableEntity
	}

	e := &execution{doc: doc, vars: vars, resolver: h.resolver}
	data, errs := e.run(ctx, op)
	return &response{Data: data, Errors: errs}, http.StatusOK
}

func selectOperation(doc *ast.QueryDocument, name string) (*ast.OperationDefinition, *gqlerror.Error) {
	var op *ast.OperationDefinition
	switch {
	case name != "":
		op = doc.Operations.ForName(name)
		if op == nil {
			return nil, gqlerror.Errorf("operation %s not found", name)
		}
	case len(doc.Operations) == 1:
		op = doc.Operations[0]
	default:
		return nil, gqlerror.Errorf("operationName is required when the document holds several operations")
	}

	if op.Operation != ast.Query {
		return nil, gqlerror.Errorf("only queries are supported")
	}
	return op, nil
}

// execution answers one operation
type execution struct {
	doc      *ast.QueryDocument
	vars     map[string]interface{}
	resolver *Resolver
}

// run resolves every root field. A failed field answers null with an error at its path.
func (e *execution) run(ctx context.Context, op *ast.OperationDefinition) (*object, gqlerror.List) {
	data := newObject()
	var errs gqlerror.List

	for _, cf := range e.collectFields(op.SelectionSet, "Query") {
		if cf.field.Name == typenameField {
			data.set(cf.key, "Query")
			continue
		}

		value, err := e.resolveField(ctx, cf)
		if err != nil {
			data.set(cf.key, nil)
			errs = append(errs, fieldError(ctx, cf.field, cf.key, err))
			continue
		}
		data.set(cf.key, e.project(value, cf.field.Definition, cf.selectionSet))
	}

	return data, errs
}

func (e *execution) resolveField(ctx context.Context, cf *collectedField) (value interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = RecoverFunc(ctx, r)
		}
	}()

	logger.DebugCtx(ctx, "Resolving GraphQL field", zap.String("field", cf.field.Name))

	result, err := e.resolver.resolve(ctx, cf.field.Name, cf.field.ArgumentMap(e.vars))
	if err != nil {
		return nil, err
	}
	return toJSONValue(result)
}

func decodeJSON(r io.Reader, v interface{}) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return dec.Decode(v)
}

// SetupRoutes configures GraphQL API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	router.POST("/graphql", handler.HandleGraphQL)
	router.GET("/graphql", handler.HandleGraphQL)
}
