package servers_test

import (
	"net/http"
	"reflect"
	"slices"
	"sort"
	"strings"
	"testing"

	"courierdispatch/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger_IsValid(t *testing.T) {
	doc, err := servers.GetSwagger()
	require.NoError(t, err)

	require.NoError(t, doc.Validate(t.Context()))
	assert.Equal(t, "/api/v1", doc.Servers[0].URL)
}

func TestRegisterHandlers_CoversEveryDocumentedOperation(t *testing.T) {
	doc, err := servers.GetSwagger()
	require.NoError(t, err)

	documented := make([]string, 0)
	for path, item := range doc.Paths.Map() {
		for method := range item.Operations() {
			documented = append(documented, method+" "+strings.NewReplacer("{", ":", "}", "").Replace(path))
		}
	}

	e := echo.New()
	servers.RegisterHandlers(e, nil)
	registered := make([]string, 0)
	for _, r := range e.Routes() {
		if r.Method == http.MethodGet || r.Method == http.MethodPost {
			registered = append(registered, r.Method+" "+r.Path)
		}
	}

	sort.Strings(documented)
	sort.Strings(registered)
	assert.Equal(t, documented, registered)
}

func TestModels_MatchDocumentedSchemas(t *testing.T) {
	doc, err := servers.GetSwagger()
	require.NoError(t, err)

	models := map[string]reflect.Type{
		"Location":   reflect.TypeOf(servers.Location{}),
		"NewCourier": reflect.TypeOf(servers.NewCourier{}),
		"NewOrder":   reflect.TypeOf(servers.NewOrder{}),
		"Created":    reflect.TypeOf(servers.Created{}),
		"Courier":    reflect.TypeOf(servers.Courier{}),
		"Order":      reflect.TypeOf(servers.Order{}),
		"Transport":  reflect.TypeOf(servers.Transport{}),
		"Error":      reflect.TypeOf(servers.Error{}),
	}

	schemaNames := make([]string, 0, len(doc.Components.Schemas))
	for name := range doc.Components.Schemas {
		schemaNames = append(schemaNames, name)
	}
	modelNames := make([]string, 0, len(models))
	for name := range models {
		modelNames = append(modelNames, name)
	}
	assert.ElementsMatch(t, schemaNames, modelNames)

	for name, model := range models {
		t.Run(name, func(t *testing.T) {
			ref, ok := doc.Components.Schemas[name]
			require.True(t, ok)
			schema := ref.Value

			fields := make(map[string]reflect.StructField, model.NumField())
			for i := range model.NumField() {
				field := model.Field(i)
				jsonName, _, _ := strings.Cut(field.Tag.Get("json"), ",")
				fields[jsonName] = field
			}
			assert.Len(t, fields, len(schema.Properties))

			for prop := range schema.Properties {
				field, ok := fields[prop]
				if !assert.True(t, ok, "property %s has no field", prop) {
					continue
				}
				required := slices.Contains(schema.Required, prop)
				assert.Equal(t, !required, field.Type.Kind() == reflect.Pointer,
					"property %s: optional properties must be pointers", prop)
			}
		})
	}
}
