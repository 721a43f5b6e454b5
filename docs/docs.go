// Package docs is generated by swag from the godoc annotations in cmd/api.
// Regenerate with: swag init -g cmd/api/main.go
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
                "description": "Healthcheck endpoint",
                "produces": ["application/json"],
                "tags": ["ops"],
                "summary": "Healthcheck",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/main.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/main.HealthResponse"}}
                }
            }
        },
        "/halls": {
            "get": {
                "description": "Dining hall names, sorted",
                "produces": ["application/json"],
                "tags": ["menu"],
                "summary": "List dining halls",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}
                }
            }
        },
        "/halls/{hall}/meals": {
            "get": {
                "description": "Meals served at a dining hall, sorted",
                "produces": ["application/json"],
                "tags": ["menu"],
                "summary": "List meals",
                "parameters": [
                    {"type": "string", "description": "Dining hall", "name": "hall", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/halls/{hall}/meals/{meal}/items": {
            "get": {
                "description": "Items served at a dining hall for a meal, in menu order. Index is what POST /users/{user_id}/meals expects.",
                "produces": ["application/json"],
                "tags": ["menu"],
                "summary": "List menu items",
                "parameters": [
                    {"type": "string", "description": "Dining hall", "name": "hall", "in": "path", "required": true},
                    {"type": "string", "description": "Meal", "name": "meal", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/main.menuItemResponse"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/users/{user_id}/meals": {
            "post": {
                "description": "Log the index-th item served at a hall for a meal. Date defaults to today.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Log a meal",
                "parameters": [
                    {"type": "string", "description": "Student ID", "name": "user_id", "in": "path", "required": true},
                    {"description": "Menu selection", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/main.LogMealPayload"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/main.LogMealResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/users/{user_id}/summary": {
            "get": {
                "description": "Totals logged on a date against the user's goals",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Daily nutrition summary",
                "parameters": [
                    {"type": "string", "description": "Student ID", "name": "user_id", "in": "path", "required": true},
                    {"type": "string", "description": "YYYY-MM-DD, defaults to today", "name": "date", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.DailySummary"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/users/{user_id}/recommendation": {
            "get": {
                "description": "The menu item whose calories are closest to what the user has left for the day",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Recommend a menu item",
                "parameters": [
                    {"type": "string", "description": "Student ID", "name": "user_id", "in": "path", "required": true},
                    {"type": "string", "description": "YYYY-MM-DD, defaults to today", "name": "date", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.Recommendation"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/users/{user_id}/share": {
            "post": {
                "description": "Send the day's summary to every friend that still exists",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Share daily summary",
                "parameters": [
                    {"type": "string", "description": "Student ID", "name": "user_id", "in": "path", "required": true},
                    {"type": "string", "description": "YYYY-MM-DD, defaults to today", "name": "date", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.SharedSummary"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/users/{user_id}/inbox": {
            "get": {
                "description": "Summaries friends have shared with the user, oldest first",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Shared summaries inbox",
                "parameters": [
                    {"type": "string", "description": "Student ID", "name": "user_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.SummarySharedEvent"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "domain.NutritionFacts": {
            "type": "object",
            "properties": {
                "calories": {"type": "number"},
                "protein": {"type": "number"},
                "carbs": {"type": "number"},
                "fat": {"type": "number"}
            }
        },
        "domain.Goals": {
            "type": "object",
            "properties": {
                "calories": {"type": "number"},
                "protein": {"type": "number"},
                "carbs": {"type": "number"},
                "fat": {"type": "number"}
            }
        },
        "domain.MenuItem": {
            "type": "object",
            "properties": {
                "dish": {"type": "string"},
                "station": {"type": "string"},
                "serving_size": {"type": "string"},
                "facts": {"$ref": "#/definitions/domain.NutritionFacts"}
            }
        },
        "domain.MenuEntry": {
            "type": "object",
            "properties": {
                "hall": {"type": "string"},
                "meal": {"type": "string"},
                "item": {"$ref": "#/definitions/domain.MenuItem"}
            }
        },
        "domain.SharedSummary": {
            "type": "object",
            "properties": {
                "friend_id": {"type": "string"},
                "friend_name": {"type": "string"},
                "summary": {"type": "string"}
            }
        },
        "domain.SummarySharedEvent": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "event_type": {"type": "string"},
                "from_user_id": {"type": "string"},
                "from_name": {"type": "string"},
                "to_user_id": {"type": "string"},
                "to_name": {"type": "string"},
                "date": {"type": "string"},
                "totals": {"$ref": "#/definitions/domain.NutritionFacts"},
                "summary": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "main.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "version": {"type": "string"},
                "timestamp": {"type": "string"},
                "menu_items": {"type": "integer"},
                "services": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "main.LogMealPayload": {
            "type": "object",
            "required": ["hall", "meal", "index"],
            "properties": {
                "hall": {"type": "string"},
                "meal": {"type": "string"},
                "index": {"type": "integer", "minimum": 0},
                "date": {"type": "string"}
            }
        },
        "main.LogMealResponse": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "item": {"$ref": "#/definitions/domain.MenuItem"},
                "totals": {"$ref": "#/definitions/domain.NutritionFacts"}
            }
        },
        "main.menuItemResponse": {
            "type": "object",
            "properties": {
                "index": {"type": "integer"},
                "dish": {"type": "string"},
                "station": {"type": "string"},
                "serving_size": {"type": "string"},
                "facts": {"$ref": "#/definitions/domain.NutritionFacts"}
            }
        },
        "service.DailySummary": {
            "type": "object",
            "properties": {
                "user_id": {"type": "string"},
                "name": {"type": "string"},
                "date": {"type": "string"},
                "totals": {"$ref": "#/definitions/domain.NutritionFacts"},
                "goals": {"$ref": "#/definitions/domain.Goals"},
                "remaining_calories": {"type": "number"}
            }
        },
        "service.Recommendation": {
            "type": "object",
            "properties": {
                "entry": {"$ref": "#/definitions/domain.MenuEntry"},
                "target_calories": {"type": "number"},
                "difference": {"type": "number"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Student Nutrition Tracker",
	Description:      "Dining hall menus, daily nutrition logs and meal recommendations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
