package http

import (
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

type openAPIDoc struct {
	json string
}

func (d openAPIDoc) ReadDoc() string {
	return d.json
}

var registerDocOnce sync.Once

// SwaggerHandler registers the OpenAPI document with swag and returns the
// Swagger UI handler serving it. The document is registered once per process.
func SwaggerHandler(swagger *openapi3.T) (echo.HandlerFunc, error) {
	data, err := swagger.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal openapi document: %w", err)
	}

	registerDocOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{json: string(data)})
	})

	return echoSwagger.WrapHandler, nil
}
