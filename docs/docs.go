// Package docs holds the OpenAPI document served under /swagger/. Regenerate it with
// swag init -g cmd/kma-forecast/main.go after changing controller annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/address/neighborhoods": {
            "get": {
                "description": "Same as the path form, but an omitted city selects the province-level entry",
                "produces": ["application/json"],
                "tags": ["address"],
                "summary": "List the neighborhoods of a city by query",
                "parameters": [
                    {"type": "string", "description": "Province name", "name": "province", "in": "query", "required": true},
                    {"type": "string", "description": "City name", "name": "city", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Neighborhood names", "schema": {"type": "array", "items": {"type": "string"}}},
                    "400": {"description": "Missing province", "schema": {"$ref": "#/definitions/controller.ErrorResponse"}},
                    "404": {"description": "Unknown province or city", "schema": {"$ref": "#/definitions/controller.ErrorResponse"}}
                }
            }
        },
        "/address/provinces": {
            "get": {
                "description": "Every province of the address table, in table order",
                "produces": ["application/json"],
                "tags": ["address"],
                "summary": "List provinces",
                "responses": {
                    "200": {"description": "Province names", "schema": {"type": "array", "items": {"type": "string"}}}
                }
            }
        },
        "/address/provinces/{province}/cities": {
            "get": {
                "description": "The cities of a province in table order. The empty string is the province-level entry",
                "produces": ["application/json"],
                "tags": ["address"],
                "summary": "List the cities of a province",
                "parameters": [
                    {"type": "string", "description": "Province name", "name": "province", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "City names", "schema": {"type": "array", "items": {"type": "string"}}},
                    "404": {"description": "Unknown province", "schema": {"$ref": "#/definitions/controller.ErrorResponse"}}
                }
            }
        },
        "/address/provinces/{province}/cities/{city}/neighborhoods": {
            "get": {
                "description": "The neighborhoods of a city in table order. Use /address/neighborhoods for the empty city",
                "produces": ["application/json"],
                "tags": ["address"],
                "summary": "List the neighborhoods of a city",
                "parameters": [
                    {"type": "string", "description": "Province name", "name": "province", "in": "path", "required": true},
                    {"type": "string", "description": "City name", "name": "city", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Neighborhood names", "schema": {"type": "array", "items": {"type": "string"}}},
                    "404": {"description": "Unknown province or city", "schema": {"$ref": "#/definitions/controller.ErrorResponse"}}
                }
            }
        },
        "/address/resolve": {
            "get": {
                "description": "Omitted city or neighborhood parameters select the empty entry of their level",
                "produces": ["application/json"],
                "tags": ["address"],
                "summary": "Resolve a place to its grid coordinate",
                "parameters": [
                    {"type": "string", "description": "Province name", "name": "province", "in": "query", "required": true},
                    {"type": "string", "description": "City name", "name": "city", "in": "query"},
                    {"type": "string", "description": "Neighborhood name", "name": "neighborhood", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Place with its grid coordinate", "schema": {"$ref": "#/definitions/model.Place"}},
                    "400": {"description": "Missing province", "schema": {"$ref": "#/definitions/controller.ErrorResponse"}},
                    "404": {"description": "Unknown place", "schema": {"$ref": "#/definitions/controller.ErrorResponse"}}
                }
            }
        },
        "/credential": {
            "get": {
                "produces": ["application/json"],
                "tags": ["credential"],
                "summary": "Get the credential state",
                "responses": {
                    "200": {"description": "Session state", "schema": {"$ref": "#/definitions/model.CredentialStatus"}}
                }
            },
            "put": {
                "description": "Validates the key against the provider and keeps it when accepted",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["credential"],
                "summary": "Submit a service key",
                "parameters": [
                    {"description": "Service key and keep-login flag", "name": "credential", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Credential"}}
                ],
                "responses": {
                    "200": {"description": "Session state", "schema": {"$ref": "#/definitions/model.CredentialStatus"}},
                    "400": {"description": "Malformed body", "schema": {"$ref": "#/definitions/controller.ErrorResponse"}},
                    "401": {"description": "Service key rejected", "schema": {"$ref": "#/definitions/controller.ErrorResponse"}},
                    "409": {"description": "Replaced or cleared during validation", "schema": {"$ref": "#/definitions/controller.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["credential"],
                "summary": "Forget the service key",
                "responses": {
                    "204": {"description": "Cleared"}
                }
            }
        },
        "/forecast": {
            "get": {
                "description": "Folded forecast of a place (province, city, neighborhood) or of a grid point (nx, ny)",
                "produces": ["application/json"],
                "tags": ["forecast"],
                "summary": "Get the forecast of a place or grid point",
                "parameters": [
                    {"type": "string", "description": "Province name", "name": "province", "in": "query"},
                    {"type": "string", "description": "City name", "name": "city", "in": "query"},
                    {"type": "string", "description": "Neighborhood name", "name": "neighborhood", "in": "query"},
                    {"type": "integer", "description": "Grid X", "name": "nx", "in": "query"},
                    {"type": "integer", "description": "Grid Y", "name": "ny", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Forecast record", "schema": {"$ref": "#/definitions/model.ForecastResponse"}},
                    "400": {"description": "Invalid selector", "schema": {"$ref": "#/definitions/controller.ErrorResponse"}},
                    "401": {"description": "Service key rejected", "schema": {"$ref": "#/definitions/controller.ErrorResponse"}},
                    "404": {"description": "Unknown place", "schema": {"$ref": "#/definitions/controller.ErrorResponse"}},
                    "428": {"description": "No accepted service key", "schema": {"$ref": "#/definitions/controller.ErrorResponse"}},
                    "502": {"description": "Provider fault or unreadable response", "schema": {"$ref": "#/definitions/controller.ErrorResponse"}},
                    "504": {"description": "Provider unreachable", "schema": {"$ref": "#/definitions/controller.ErrorResponse"}}
                }
            }
        },
        "/forecast/hourly": {
            "get": {
                "description": "One record per forecast hour, for the same selectors as /forecast",
                "produces": ["application/json"],
                "tags": ["forecast"],
                "summary": "Get the forecast hour by hour",
                "parameters": [
                    {"type": "string", "description": "Province name", "name": "province", "in": "query"},
                    {"type": "string", "description": "City name", "name": "city", "in": "query"},
                    {"type": "string", "description": "Neighborhood name", "name": "neighborhood", "in": "query"},
                    {"type": "integer", "description": "Grid X", "name": "nx", "in": "query"},
                    {"type": "integer", "description": "Grid Y", "name": "ny", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Hourly records", "schema": {"$ref": "#/definitions/model.HourlyForecastResponse"}},
                    "400": {"description": "Invalid selector", "schema": {"$ref": "#/definitions/controller.ErrorResponse"}},
                    "404": {"description": "Unknown place", "schema": {"$ref": "#/definitions/controller.ErrorResponse"}},
                    "428": {"description": "No accepted service key", "schema": {"$ref": "#/definitions/controller.ErrorResponse"}},
                    "502": {"description": "Provider fault or unreadable response", "schema": {"$ref": "#/definitions/controller.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Reports the credential store, the address index and the credential session",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Check service health",
                "responses": {
                    "200": {"description": "UP", "schema": {"$ref": "#/definitions/model.HealthResponse"}},
                    "503": {"description": "DOWN", "schema": {"$ref": "#/definitions/model.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controller.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "kind": {"type": "string"}
            }
        },
        "model.ComponentHealthStatus": {
            "type": "object",
            "properties": {
                "details": {"type": "object", "additionalProperties": {"type": "string"}},
                "status": {"type": "string"}
            }
        },
        "model.Coordinate": {
            "type": "object",
            "properties": {
                "nx": {"type": "integer"},
                "ny": {"type": "integer"}
            }
        },
        "model.Credential": {
            "type": "object",
            "properties": {
                "keepLogin": {"type": "boolean"},
                "serviceKey": {"type": "string"}
            }
        },
        "model.CredentialStatus": {
            "type": "object",
            "properties": {
                "keepLogin": {"type": "boolean"},
                "state": {"type": "string", "enum": ["AWAITING_CREDENTIAL", "VALIDATING", "READY"]}
            }
        },
        "model.ForecastRecord": {
            "type": "object",
            "additionalProperties": {"type": "string"}
        },
        "model.ForecastResponse": {
            "type": "object",
            "properties": {
                "coordinate": {"$ref": "#/definitions/model.Coordinate"},
                "forecast": {"$ref": "#/definitions/model.ForecastRecord"},
                "place": {"$ref": "#/definitions/model.PlaceQuery"}
            }
        },
        "model.HealthResponse": {
            "type": "object",
            "properties": {
                "addressIndex": {"$ref": "#/definitions/model.ComponentHealthStatus"},
                "credential": {"$ref": "#/definitions/model.ComponentHealthStatus"},
                "credentialStore": {"$ref": "#/definitions/model.ComponentHealthStatus"},
                "status": {"type": "string"}
            }
        },
        "model.HourlyForecast": {
            "type": "object",
            "properties": {
                "fcstDate": {"type": "string"},
                "fcstTime": {"type": "string"},
                "record": {"$ref": "#/definitions/model.ForecastRecord"}
            }
        },
        "model.HourlyForecastResponse": {
            "type": "object",
            "properties": {
                "coordinate": {"$ref": "#/definitions/model.Coordinate"},
                "hours": {"type": "array", "items": {"$ref": "#/definitions/model.HourlyForecast"}},
                "place": {"$ref": "#/definitions/model.PlaceQuery"}
            }
        },
        "model.Place": {
            "type": "object",
            "properties": {
                "city": {"type": "string"},
                "coordinate": {"$ref": "#/definitions/model.Coordinate"},
                "neighborhood": {"type": "string"},
                "province": {"type": "string"}
            }
        },
        "model.PlaceQuery": {
            "type": "object",
            "properties": {
                "city": {"type": "string"},
                "neighborhood": {"type": "string"},
                "province": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/kma-forecast",
	Schemes:          []string{},
	Title:            "KMA Forecast API",
	Description:      "Village forecasts of the Korea Meteorological Administration by place or grid point.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
