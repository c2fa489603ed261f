// Package docs registers the OpenAPI description served under /swagger.
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
        "/categories": {
            "get": {"tags": ["categories"], "summary": "List categories", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Category"}}}}},
            "post": {"tags": ["categories"], "summary": "Create category", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/http.createCategoryRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Category"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}}}}
        },
        "/categories/{id}": {
            "get": {"tags": ["categories"], "summary": "Get category", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Category"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.errorResponse"}}}},
            "delete": {"tags": ["categories"], "summary": "Delete category", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.messageResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.errorResponse"}}}}
        },
        "/countdowns": {
            "get": {"tags": ["countdowns"], "summary": "List countdowns ordered by target date", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Countdown"}}}}},
            "post": {"tags": ["countdowns"], "summary": "Create countdown", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/http.createCountdownRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Countdown"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}}}}
        },
        "/countdowns/{id}": {
            "get": {"tags": ["countdowns"], "summary": "Get countdown", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Countdown"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.errorResponse"}}}},
            "put": {"tags": ["countdowns"], "summary": "Update countdown (only supplied fields)", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/http.updateCountdownRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Countdown"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.errorResponse"}}}},
            "delete": {"tags": ["countdowns"], "summary": "Delete countdown", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.messageResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.errorResponse"}}}}
        },
        "/habits": {
            "get": {"tags": ["habits"], "summary": "List habits", "produces": ["application/json"],
                "parameters": [{"in": "query", "name": "category_id", "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Habit"}}}}},
            "post": {"tags": ["habits"], "summary": "Create habit", "description": "Frequency defaults to daily when omitted.", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/http.createHabitRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Habit"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}}}}
        },
        "/habits/{id}": {
            "get": {"tags": ["habits"], "summary": "Get habit", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Habit"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.errorResponse"}}}},
            "put": {"tags": ["habits"], "summary": "Update habit (only supplied fields)", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/http.updateHabitRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Habit"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.errorResponse"}}}},
            "delete": {"tags": ["habits"], "summary": "Delete habit and its logs", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.messageResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.errorResponse"}}}}
        },
        "/habits/{id}/log": {
            "post": {"tags": ["logs"], "summary": "Record a completion", "description": "Without a date the completion is recorded now. One completion per UTC day.", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}, {"in": "query", "name": "date", "type": "string"}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.HabitLog"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.errorResponse"}}}}
        },
        "/habits/{id}/logs": {
            "get": {"tags": ["logs"], "summary": "List completions of a habit", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}, {"in": "query", "name": "start_date", "type": "string"}, {"in": "query", "name": "end_date", "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.HabitLog"}}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.errorResponse"}}}}
        },
        "/habits/{id}/logs/{log_id}": {
            "delete": {"tags": ["logs"], "summary": "Delete a completion", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}, {"in": "path", "name": "log_id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.messageResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.errorResponse"}}}}
        },
        "/habits/{id}/stats": {
            "get": {"tags": ["stats"], "summary": "Statistics of one habit", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.HabitStats"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.errorResponse"}}}}
        },
        "/stats": {
            "get": {"tags": ["stats"], "summary": "Statistics of every habit", "produces": ["application/json"],
                "parameters": [{"in": "query", "name": "category_id", "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.HabitStats"}}}}}
        }
    },
    "definitions": {
        "domain.Category": {"type": "object", "properties": {
            "id": {"type": "string"}, "name": {"type": "string"}, "color": {"type": "string"}, "created_at": {"type": "string"}}},
        "domain.Countdown": {"type": "object", "properties": {
            "id": {"type": "string"}, "title": {"type": "string"}, "description": {"type": "string"},
            "target_date": {"type": "string"}, "notify_before": {"type": "integer"}, "is_timer": {"type": "boolean"},
            "is_completed": {"type": "boolean"}, "created_at": {"type": "string"}}},
        "domain.Habit": {"type": "object", "properties": {
            "id": {"type": "string"}, "title": {"type": "string"}, "description": {"type": "string"},
            "frequency": {"type": "string", "enum": ["daily", "weekly", "custom"]},
            "custom_days": {"type": "array", "items": {"type": "integer"}}, "category_id": {"type": "string"}, "created_at": {"type": "string"}}},
        "domain.HabitLog": {"type": "object", "properties": {
            "id": {"type": "string"}, "habit_id": {"type": "string"}, "completed_at": {"type": "string"}}},
        "domain.HabitStats": {"type": "object", "properties": {
            "habit_id": {"type": "string"}, "title": {"type": "string"}, "total_completions": {"type": "integer"},
            "current_streak": {"type": "integer"}, "longest_streak": {"type": "integer"}, "completion_rate": {"type": "number"}}},
        "http.createCategoryRequest": {"type": "object", "required": ["name", "color"], "properties": {
            "name": {"type": "string"}, "color": {"type": "string"}}},
        "http.createCountdownRequest": {"type": "object", "required": ["title", "target_date"], "properties": {
            "title": {"type": "string"}, "description": {"type": "string"}, "target_date": {"type": "string"},
            "notify_before": {"type": "integer"}, "is_timer": {"type": "boolean"}}},
        "http.updateCountdownRequest": {"type": "object", "properties": {
            "title": {"type": "string"}, "description": {"type": "string"}, "target_date": {"type": "string"},
            "notify_before": {"type": "integer"}, "is_timer": {"type": "boolean"}}},
        "http.createHabitRequest": {"type": "object", "required": ["title"], "properties": {
            "title": {"type": "string"}, "description": {"type": "string"}, "frequency": {"type": "string"},
            "custom_days": {"type": "array", "items": {"type": "integer"}}, "category_id": {"type": "string"}}},
        "http.updateHabitRequest": {"type": "object", "properties": {
            "title": {"type": "string"}, "description": {"type": "string"}, "frequency": {"type": "string"},
            "custom_days": {"type": "array", "items": {"type": "integer"}}, "category_id": {"type": "string"}}},
        "http.errorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "http.messageResponse": {"type": "object", "properties": {"message": {"type": "string"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Kanso Countdown API",
	Description:      "Countdowns, habits, completion logs and habit statistics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
