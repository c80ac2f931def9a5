// Package docs registers the OpenAPI document served under /swagger.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.StatusResponse"}}}
            }
        },
        "/api/post_env": {
            "post": {
                "description": "Accepts {temperature, humidity} or the device keys {nhiet_do, do_am}.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["env"],
                "summary": "Record a sensor reading",
                "parameters": [{"description": "Reading", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.EnvRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/get_env": {
            "get": {
                "produces": ["application/json"],
                "tags": ["env"],
                "summary": "Latest sensor readings",
                "parameters": [{"type": "integer", "default": 50, "description": "Maximum number of readings", "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.SensorReadingResponse"}}}}
            }
        },
        "/api/post_threshold_temp": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["threshold"],
                "summary": "Save the temperature threshold",
                "parameters": [{"description": "Band", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ThresholdRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}}
            }
        },
        "/api/get_threshold_temp": {
            "get": {
                "produces": ["application/json"],
                "tags": ["threshold"],
                "summary": "Get the temperature threshold",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Threshold"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/post_threshold_hum": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["threshold"],
                "summary": "Save the humidity threshold",
                "parameters": [{"description": "Band", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ThresholdRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}}
            }
        },
        "/api/get_threshold_hum": {
            "get": {
                "produces": ["application/json"],
                "tags": ["threshold"],
                "summary": "Get the humidity threshold",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Threshold"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/post_schedule_relay/{relay_id}": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["schedule"],
                "summary": "Save a relay schedule",
                "parameters": [
                    {"type": "integer", "description": "Relay id (1-4)", "name": "relay_id", "in": "path", "required": true},
                    {"description": "Schedule", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ScheduleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/get_schedule_relay/{relay_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["schedule"],
                "summary": "Get a relay schedule",
                "parameters": [{"type": "integer", "description": "Relay id (1-4)", "name": "relay_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.RelaySchedule"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/get_relay_status/{relay_id}": {
            "get": {
                "description": "Creates the default OFF status on first read.",
                "produces": ["application/json"],
                "tags": ["relay"],
                "summary": "Get relay status",
                "parameters": [{"type": "integer", "description": "Relay id (1-4)", "name": "relay_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.RelayStatus"}}}
            }
        },
        "/api/post_relay_status/{relay_id}": {
            "post": {
                "description": "Stores the status and appends the switch to the ON or OFF log.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["relay"],
                "summary": "Set relay status",
                "parameters": [
                    {"type": "integer", "description": "Relay id (1-4)", "name": "relay_id", "in": "path", "required": true},
                    {"description": "Status", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.RelayStatusRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}}
            }
        },
        "/api/post_relay_mode/{relay_id}": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["relay"],
                "summary": "Set relay mode",
                "parameters": [
                    {"type": "integer", "description": "Relay id (1-4)", "name": "relay_id", "in": "path", "required": true},
                    {"description": "Mode: 0 auto, 1 manual", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.RelayModeRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}}
            }
        },
        "/api/get_relay_mode/{relay_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["relay"],
                "summary": "Get relay mode",
                "parameters": [{"type": "integer", "description": "Relay id (1-4)", "name": "relay_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.RelayMode"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/get_relay_log": {
            "get": {
                "produces": ["application/json"],
                "tags": ["relay"],
                "summary": "Relay on/off log of one day",
                "parameters": [{"type": "string", "example": "10-01-2024", "description": "Day as dd-mm-yyyy", "name": "date", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.RelayLogResponse"}}}
            }
        },
        "/api/post_over_temp/{value}": {
            "post": {
                "produces": ["application/json"],
                "tags": ["alert"],
                "summary": "Log an over-temperature value",
                "parameters": [{"type": "number", "description": "Measured value", "name": "value", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}}
            }
        },
        "/api/post_over_hum/{value}": {
            "post": {
                "produces": ["application/json"],
                "tags": ["alert"],
                "summary": "Log an over-humidity value",
                "parameters": [{"type": "number", "description": "Measured value", "name": "value", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}}
            }
        },
        "/api/send_report": {
            "post": {
                "description": "Validates the date and starts a background job that builds the workbook and chart and mails them.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["report"],
                "summary": "Email the daily report",
                "parameters": [{"description": "Recipient and day", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ReportRequest"}}],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.EnvRequest": {"type": "object", "properties": {"temperature": {"type": "number", "example": 25.5}, "humidity": {"type": "number", "example": 61}}},
        "handlers.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string", "example": "invalid body"}}},
        "handlers.MessageResponse": {"type": "object", "properties": {"msg": {"type": "string", "example": "saved"}}},
        "handlers.StatusResponse": {"type": "object", "properties": {"status": {"type": "string", "example": "ok"}}},
        "handlers.ReportRequest": {"type": "object", "required": ["date"], "properties": {"date": {"type": "string", "example": "10-01-2024"}, "email": {"type": "string", "example": "ops@example.com"}}},
        "handlers.ThresholdRequest": {"type": "object", "required": ["max_val", "min_val"], "properties": {"max_val": {"type": "number", "example": 30}, "min_val": {"type": "number", "example": 18}}},
        "handlers.ScheduleRequest": {"type": "object", "required": ["duration_s", "on_time"], "properties": {"duration_s": {"type": "integer", "example": 900}, "on_time": {"type": "string", "example": "06:30:00"}}},
        "handlers.RelayStatusRequest": {"type": "object", "required": ["status"], "properties": {"status": {"type": "integer", "example": 1}}},
        "handlers.RelayModeRequest": {"type": "object", "required": ["mode"], "properties": {"mode": {"type": "integer", "example": 1}}},
        "handlers.RelayLogResponse": {"type": "object", "properties": {"count": {"type": "integer"}, "date": {"type": "string", "example": "10-01-2024"}, "events": {"type": "array", "items": {"$ref": "#/definitions/models.RelayEvent"}}}},
        "handlers.SensorReadingResponse": {"type": "object", "properties": {"time": {"type": "string"}, "nhiet_do": {"type": "number", "example": 25.5}, "do_am": {"type": "number", "example": 61}}},
        "models.RelayEvent": {"type": "object", "properties": {"action": {"type": "string"}, "relay": {"type": "integer"}, "time": {"type": "string"}}},
        "models.RelayMode": {"type": "object", "properties": {"mode": {"type": "integer"}, "relay": {"type": "integer"}, "update_time": {"type": "string"}}},
        "models.RelaySchedule": {"type": "object", "properties": {"duration_s": {"type": "integer"}, "on_time": {"type": "string"}, "relay": {"type": "integer"}}},
        "models.RelayStatus": {"type": "object", "properties": {"relay": {"type": "integer"}, "status": {"type": "integer"}, "update_time": {"type": "string"}}},
        "models.Threshold": {"type": "object", "properties": {"max_val": {"type": "number"}, "min_val": {"type": "number"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Home Relay API",
	Description:      "Sensor logging, relay control and daily e-mail reports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
