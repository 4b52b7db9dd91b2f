// Package docs — Swagger-описание API в формате swag, его отдает echo-swagger.
// Ведется вручную вместе с аннотациями хендлеров; router_test сверяет пути с маршрутами.
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
        "/admin/boards": {
            "post": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "tags": ["admin"],
                "summary": "Создать доску",
                "parameters": [
                    {"description": "Board", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.BoardSettingRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/http.APIError"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.APIError"}}
                }
            }
        },
        "/admin/boards/{name}": {
            "put": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "tags": ["admin"],
                "summary": "Изменить доску",
                "parameters": [
                    {"type": "string", "description": "Board", "name": "name", "in": "path", "required": true},
                    {"description": "Board", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.BoardSettingRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/http.APIError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.APIError"}}
                }
            },
            "delete": {
                "security": [{"Bearer": []}],
                "tags": ["admin"],
                "summary": "Удалить доску",
                "parameters": [
                    {"type": "string", "description": "Board", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/http.APIError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.APIError"}}
                }
            }
        },
        "/admin/boards/{name}/posts/{id}": {
            "delete": {
                "security": [{"Bearer": []}],
                "tags": ["admin"],
                "summary": "Удалить пост",
                "parameters": [
                    {"type": "string", "description": "Board", "name": "name", "in": "path", "required": true},
                    {"type": "integer", "description": "Post", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/http.APIError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.APIError"}}
                }
            }
        },
        "/admin/boards/{name}/{id}/sticky": {
            "put": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "tags": ["admin"],
                "summary": "Закрепить тред",
                "parameters": [
                    {"type": "string", "description": "Board", "name": "name", "in": "path", "required": true},
                    {"type": "integer", "description": "Thread", "name": "id", "in": "path", "required": true},
                    {"description": "Sticky", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.StickyRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/http.APIError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.APIError"}}
                }
            }
        },
        "/admin/login": {
            "post": {
                "description": "Первый вход при пустом списке персонала создает администратора.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Вход персонала",
                "parameters": [
                    {"description": "Credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "session token", "schema": {"type": "string"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.APIError"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/http.APIError"}}
                }
            }
        },
        "/admin/users": {
            "post": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "tags": ["admin"],
                "summary": "Создать учетную запись",
                "parameters": [
                    {"description": "User", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.APIError"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/http.APIError"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.APIError"}}
                }
            }
        },
        "/api/boards": {
            "get": {
                "produces": ["application/json"],
                "tags": ["boards"],
                "summary": "Список досок",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.BoardResponse"}}}
                }
            }
        },
        "/api/boards/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["boards"],
                "summary": "Треды доски",
                "parameters": [
                    {"type": "string", "description": "Board", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.ThreadResponse"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.APIError"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["boards"],
                "summary": "Создать тред",
                "parameters": [
                    {"type": "string", "description": "Board", "name": "name", "in": "path", "required": true},
                    {"description": "Post", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.PostRequest"}}
                ],
                "responses": {
                    "200": {"description": "thread id", "schema": {"type": "integer"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.APIError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.APIError"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.APIError"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/http.APIError"}}
                }
            }
        },
        "/api/boards/{name}/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["boards"],
                "summary": "Посты треда",
                "parameters": [
                    {"type": "string", "description": "Board", "name": "name", "in": "path", "required": true},
                    {"type": "integer", "description": "Thread", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.PostResponse"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.APIError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.APIError"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["boards"],
                "summary": "Ответить в тред",
                "parameters": [
                    {"type": "string", "description": "Board", "name": "name", "in": "path", "required": true},
                    {"type": "integer", "description": "Thread", "name": "id", "in": "path", "required": true},
                    {"description": "Post", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.PostRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ReplyResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.APIError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.APIError"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/http.APIError"}}
                }
            }
        },
        "/api/challenge": {
            "get": {
                "produces": ["application/json"],
                "tags": ["challenge"],
                "summary": "Выдать капчу",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ChallengeResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.APIError"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["challenge"],
                "summary": "Ответить на капчу",
                "parameters": [
                    {"description": "Answer", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ChallengeAnswerRequest"}}
                ],
                "responses": {
                    "200": {"description": "posting token", "schema": {"type": "string"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.APIError"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.HealthzResponse"}}
                }
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ReadyzResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/http.APIError"}}
                }
            }
        }
    },
    "definitions": {
        "dto.BoardResponse": {
            "type": "object",
            "properties": {
                "bump_limit": {"type": "integer"},
                "filesize_limit": {"type": "integer"},
                "name": {"type": "string"},
                "title": {"type": "string"},
                "worksafe": {"type": "boolean"}
            }
        },
        "dto.BoardSettingRequest": {
            "type": "object",
            "properties": {
                "bump_limit": {"type": "integer"},
                "filesize_limit": {"type": "integer"},
                "name": {"type": "string"},
                "title": {"type": "string"},
                "worksafe": {"type": "boolean"}
            }
        },
        "dto.ChallengeAnswerRequest": {
            "type": "object",
            "properties": {
                "ans": {"type": "string"},
                "token": {"type": "string"}
            }
        },
        "dto.ChallengeResponse": {
            "type": "object",
            "properties": {
                "cap": {"type": "string"},
                "verif": {"type": "string"}
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "properties": {
                "ident": {"type": "string"},
                "pass": {"type": "string"}
            }
        },
        "dto.PostRequest": {
            "type": "object",
            "properties": {
                "challenge": {"type": "string"},
                "comment": {"type": "string"},
                "email": {"type": "string"},
                "name": {"type": "string"},
                "subject": {"type": "string"}
            }
        },
        "dto.PostResponse": {
            "type": "object",
            "properties": {
                "comment": {"type": "string"},
                "date": {"type": "integer"},
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "subject": {"type": "string"},
                "trip": {"type": "string"}
            }
        },
        "dto.ReplyResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"}
            }
        },
        "dto.StickyRequest": {
            "type": "object",
            "properties": {
                "sticky": {"type": "boolean"}
            }
        },
        "dto.ThreadResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "last_bump": {"type": "integer"},
                "sticky": {"type": "boolean"}
            }
        },
        "dto.UserRequest": {
            "type": "object",
            "properties": {
                "ident": {"type": "string"},
                "pass": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "http.APIError": {
            "type": "object",
            "properties": {
                "reason": {"type": "string"}
            }
        },
        "http.HealthzResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"}
            }
        },
        "http.ReadyzResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:1234",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "board-service API",
	Description:      "Имиджборд: капча, разрешение на постинг, роли персонала.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
