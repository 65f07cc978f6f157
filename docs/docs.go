// Package docs holds the OpenAPI description served at /swagger/*.
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
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {"200": {"description": "Server is up"}}
            }
        },
        "/ready": {
            "get": {
                "tags": ["health"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Database reachable"},
                    "503": {"description": "Database not ready"}
                }
            }
        },
        "/auth/signup": {
            "post": {
                "tags": ["auth"],
                "summary": "Create an account and sign in",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Signed in, session cookie set", "schema": {"$ref": "#/definitions/AuthResult"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Sign in with email and password",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Signed in, session cookie set", "schema": {"$ref": "#/definitions/AuthResult"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Clear the session cookie",
                "responses": {"200": {"description": "Logged out", "schema": {"$ref": "#/definitions/MessageResponse"}}}
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["auth"],
                "summary": "Current user",
                "security": [{"CookieAuth": []}, {"BearerAuth": []}],
                "responses": {
                    "200": {"description": "User", "schema": {"$ref": "#/definitions/User"}},
                    "401": {"description": "Not authenticated", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/auth/google": {
            "get": {
                "tags": ["auth"],
                "summary": "Start Google sign-in",
                "responses": {
                    "307": {"description": "Redirect to Google"},
                    "503": {"description": "Google login is not configured", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/auth/google/callback": {
            "get": {
                "tags": ["auth"],
                "summary": "Finish Google sign-in",
                "parameters": [
                    {"in": "query", "name": "state", "type": "string", "required": true},
                    {"in": "query", "name": "code", "type": "string", "required": true}
                ],
                "responses": {
                    "307": {"description": "Redirect to the frontend"},
                    "400": {"description": "Invalid OAuth state", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/projects": {
            "get": {
                "tags": ["projects"],
                "summary": "List projects",
                "security": [{"CookieAuth": []}, {"BearerAuth": []}],
                "responses": {"200": {"description": "Projects", "schema": {"type": "array", "items": {"$ref": "#/definitions/Project"}}}}
            },
            "post": {
                "tags": ["projects"],
                "summary": "Create a project",
                "security": [{"CookieAuth": []}, {"BearerAuth": []}],
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/ProjectRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Project"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/projects/{id}": {
            "get": {
                "tags": ["projects"],
                "summary": "Get a project",
                "security": [{"CookieAuth": []}, {"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "Project", "schema": {"$ref": "#/definitions/Project"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "put": {
                "tags": ["projects"],
                "summary": "Update a project",
                "security": [{"CookieAuth": []}, {"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/ProjectRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/Project"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["projects"],
                "summary": "Delete a project. Its tasks are kept.",
                "security": [{"CookieAuth": []}, {"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/MessageResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/tasks": {
            "get": {
                "tags": ["tasks"],
                "summary": "List tasks, filtered and paginated",
                "security": [{"CookieAuth": []}, {"BearerAuth": []}],
                "parameters": [
                    {"in": "query", "name": "projectId", "type": "string"},
                    {"in": "query", "name": "status", "type": "string", "enum": ["todo", "in-progress", "done"]},
                    {"in": "query", "name": "priority", "type": "string", "enum": ["low", "medium", "high"]},
                    {"in": "query", "name": "deadlineStart", "type": "string"},
                    {"in": "query", "name": "deadlineEnd", "type": "string"},
                    {"in": "query", "name": "page", "type": "integer", "default": 1},
                    {"in": "query", "name": "limit", "type": "integer", "default": 10, "maximum": 100}
                ],
                "responses": {
                    "200": {"description": "Page of tasks", "schema": {"$ref": "#/definitions/TaskListResponse"}},
                    "400": {"description": "Invalid query", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "post": {
                "tags": ["tasks"],
                "summary": "Create a task",
                "security": [{"CookieAuth": []}, {"BearerAuth": []}],
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/TaskRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Task"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/tasks/{id}": {
            "get": {
                "tags": ["tasks"],
                "summary": "Get a task",
                "security": [{"CookieAuth": []}, {"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "Task", "schema": {"$ref": "#/definitions/Task"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "put": {
                "tags": ["tasks"],
                "summary": "Update a task",
                "security": [{"CookieAuth": []}, {"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/TaskRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/Task"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["tasks"],
                "summary": "Delete a task",
                "security": [{"CookieAuth": []}, {"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/MessageResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/events": {
            "get": {
                "tags": ["events"],
                "summary": "List events in date order",
                "security": [{"CookieAuth": []}, {"BearerAuth": []}],
                "responses": {"200": {"description": "Events", "schema": {"type": "array", "items": {"$ref": "#/definitions/Event"}}}}
            },
            "post": {
                "tags": ["events"],
                "summary": "Create an event",
                "security": [{"CookieAuth": []}, {"BearerAuth": []}],
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/EventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Event"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/events/{id}": {
            "get": {
                "tags": ["events"],
                "summary": "Get an event",
                "security": [{"CookieAuth": []}, {"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "Event", "schema": {"$ref": "#/definitions/Event"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "put": {
                "tags": ["events"],
                "summary": "Update an event",
                "security": [{"CookieAuth": []}, {"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/EventRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/Event"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["events"],
                "summary": "Delete an event",
                "security": [{"CookieAuth": []}, {"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/MessageResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/graphql": {
            "post": {
                "tags": ["graphql"],
                "summary": "GraphQL endpoint. Notes are only reachable here.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/GraphQLRequest"}}
                ],
                "responses": {"200": {"description": "GraphQL result with data and errors"}}
            }
        }
    },
    "definitions": {
        "ErrorResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "details": {"type": "string"}}
        },
        "MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "SignupRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}, "name": {"type": "string"}}
        },
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "email": {"type": "string"},
                "name": {"type": "string"},
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "AuthResult": {
            "type": "object",
            "properties": {"user": {"$ref": "#/definitions/User"}, "token": {"type": "string"}}
        },
        "ProjectRequest": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "description": {"type": "string"}}
        },
        "Project": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "userId": {"type": "string"},
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "TaskRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "status": {"type": "string", "enum": ["todo", "in-progress", "done"]},
                "priority": {"type": "string", "enum": ["low", "medium", "high"]},
                "deadline": {"type": "string", "description": "RFC 3339 timestamp or YYYY-MM-DD date"},
                "projectId": {"type": "string", "description": "On update, null or an empty string detaches the task"}
            }
        },
        "Task": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "status": {"type": "string"},
                "priority": {"type": "string"},
                "deadline": {"type": "string", "format": "date-time"},
                "projectId": {"type": "string"},
                "project": {"$ref": "#/definitions/Project"},
                "userId": {"type": "string"},
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "TaskListResponse": {
            "type": "object",
            "properties": {
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/Task"}},
                "total": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "currentPage": {"type": "integer"},
                "limit": {"type": "integer", "maximum": 100}
            }
        },
        "EventRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "date": {"type": "string", "description": "RFC 3339 timestamp or YYYY-MM-DD date"}
            }
        },
        "Event": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "date": {"type": "string", "format": "date-time"},
                "userId": {"type": "string"},
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "GraphQLRequest": {
            "type": "object",
            "required": ["query"],
            "properties": {
                "query": {"type": "string"},
                "operationName": {"type": "string"},
                "variables": {"type": "object"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type 'Bearer' followed by a space and the JWT"
        },
        "CookieAuth": {
            "type": "apiKey",
            "name": "token",
            "in": "header",
            "description": "Session cookie set on sign-in; browsers send it automatically"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Taskify API",
	Description:      "Personal projects, tasks, events and notes",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
