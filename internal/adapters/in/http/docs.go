package http

import (
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

const docsInstanceName = "logistics"

// docsMu guards the swag registry, which panics on duplicate registration.
var docsMu sync.Mutex

type openAPIDoc struct {
	json string
}

func (d openAPIDoc) ReadDoc() string {
	return d.json
}

// docsHandler registers doc with swag once and returns the Swagger UI handler.
func docsHandler(doc *openapi3.T) (echo.HandlerFunc, error) {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal OpenAPI spec: %w", err)
	}

	docsMu.Lock()
	if swag.GetSwagger(docsInstanceName) == nil {
		swag.Register(docsInstanceName, openAPIDoc{json: string(raw)})
	}
	docsMu.Unlock()

	return echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(docsInstanceName)), nil
}
