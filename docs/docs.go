// Package docs registers the OpenAPI description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Twelve-month heatmap with buckets and streaks",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/heatmap.Dashboard"}}}
            }
        },
        "/stats/streaks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Current and longest clean streaks",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/heatmap.Streaks"}}}
            }
        },
        "/habits": {
            "get": {
                "produces": ["application/json"],
                "tags": ["habits"],
                "summary": "List habits",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Habit"}}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["habits"],
                "summary": "Add a habit with weight 1",
                "parameters": [{"description": "Habit name", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.createHabitRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Habit"}},
                    "400": {"description": "Bad Request"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/habits/{id}": {
            "delete": {
                "tags": ["habits"],
                "summary": "Delete a habit; logged days keep its name",
                "parameters": [{"type": "string", "description": "Habit ID", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
            }
        },
        "/habits/{id}/weight": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["habits"],
                "summary": "Change a habit's weight (values below 1 become 1)",
                "parameters": [
                    {"type": "string", "description": "Habit ID", "name": "id", "in": "path", "required": true},
                    {"description": "New weight", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.updateWeightRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Habit"}}, "404": {"description": "Not Found"}}
            }
        },
        "/today/toggle": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["days"],
                "summary": "Flip a habit in today's log",
                "parameters": [{"description": "Habit name", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.toggleRequest"}}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/days/{date}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["days"],
                "summary": "Habits done and note of one day",
                "parameters": [{"type": "string", "description": "YYYY-MM-DD", "name": "date", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/services.DayDetail"}}, "400": {"description": "Bad Request"}}
            }
        },
        "/days/{date}/note": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["days"],
                "summary": "Save the journal note of a tracked day; empty text removes it",
                "parameters": [
                    {"type": "string", "description": "YYYY-MM-DD", "name": "date", "in": "path", "required": true},
                    {"description": "Note", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.noteRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/services.DayDetail"}}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/settings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Current settings",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Settings"}}}
            }
        },
        "/settings/start-date": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Change the tracking start date",
                "parameters": [{"description": "YYYY-MM-DD", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.startDateRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Settings"}}, "400": {"description": "Bad Request"}}
            }
        },
        "/data": {
            "delete": {
                "tags": ["settings"],
                "summary": "Erase habits, history and notes; tracking restarts today",
                "responses": {"204": {"description": "No Content"}}
            }
        }
    },
    "definitions": {
        "domain.Habit": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "weight": {"type": "integer"}}
        },
        "domain.Settings": {
            "type": "object",
            "properties": {"startDate": {"type": "string"}}
        },
        "heatmap.Streaks": {
            "type": "object",
            "properties": {"current_streak": {"type": "integer"}, "longest_streak": {"type": "integer"}}
        },
        "heatmap.Cell": {
            "type": "object",
            "properties": {
                "key": {"type": "string"},
                "date": {"type": "string"},
                "habits_done": {"type": "array", "items": {"type": "string"}},
                "is_future": {"type": "boolean"},
                "is_before_start": {"type": "boolean"},
                "is_today": {"type": "boolean"},
                "is_placeholder": {"type": "boolean"},
                "has_note": {"type": "boolean"},
                "bucket": {"type": "string", "enum": ["none", "untracked", "clean", "low", "mild", "moderate", "high", "severe"]}
            }
        },
        "heatmap.Month": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "year": {"type": "integer"},
                "days": {"type": "array", "items": {"$ref": "#/definitions/heatmap.Cell"}}
            }
        },
        "heatmap.Dashboard": {
            "type": "object",
            "properties": {
                "today": {"type": "string"},
                "start_date": {"type": "string"},
                "total_weight": {"type": "integer"},
                "months": {"type": "array", "items": {"$ref": "#/definitions/heatmap.Month"}},
                "streaks": {"$ref": "#/definitions/heatmap.Streaks"}
            }
        },
        "services.DayDetail": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "habits_done": {"type": "array", "items": {"type": "string"}},
                "note": {"type": "string"},
                "trackable": {"type": "boolean"}
            }
        },
        "http.createHabitRequest": {"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}},
        "http.updateWeightRequest": {"type": "object", "required": ["weight"], "properties": {"weight": {"type": "integer"}}},
        "http.toggleRequest": {"type": "object", "required": ["habit"], "properties": {"habit": {"type": "string"}}},
        "http.noteRequest": {"type": "object", "properties": {"text": {"type": "string"}}},
        "http.startDateRequest": {"type": "object", "required": ["startDate"], "properties": {"startDate": {"type": "string"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Kanso Heatmap API",
	Description:      "Weighted habit heatmap, streaks and journal notes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
