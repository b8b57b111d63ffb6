// Package docs is generated by swaggo/swag from the handler annotations.
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
        "/api/v1/boards": {
            "post": {
                "description": "Creates a board session whose selection is read from the ` + "`" + `tags` + "`" + ` query parameter.",
                "produces": ["application/json"],
                "tags": ["Boards"],
                "summary": "Open a board",
                "parameters": [
                    {"type": "string", "description": "Initial selection, comma separated", "name": "tags", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.boardOnlyResp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/boards/{id}": {
            "get": {
                "description": "Returns the board with the tasks visible under its selection.",
                "produces": ["application/json"],
                "tags": ["Boards"],
                "summary": "Get a board",
                "parameters": [
                    {"type": "string", "description": "Board ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Match policy: and or or", "name": "policy", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.detailResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/boards/{id}/bookmarks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Boards"],
                "summary": "List bookmarks",
                "parameters": [
                    {"type": "string", "description": "Board ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.listBookmarksResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "post": {
                "description": "Saves the current selection under name. A missing or blank name saves nothing and reports saved=false.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Boards"],
                "summary": "Bookmark the selection",
                "parameters": [
                    {"type": "string", "description": "Board ID", "name": "id", "in": "path", "required": true},
                    {"description": "Bookmark name", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/http.saveBookmarkReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.saveBookmarkResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/boards/{id}/bookmarks/{bookmark}/apply": {
            "post": {
                "description": "Replaces the selection with the tags of the bookmark, addressed by list index or bookmark id.",
                "produces": ["application/json"],
                "tags": ["Boards"],
                "summary": "Apply a bookmark",
                "parameters": [
                    {"type": "string", "description": "Board ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Bookmark index or id", "name": "bookmark", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.boardOnlyResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/boards/{id}/selection": {
            "put": {
                "description": "Replaces the selection with the ` + "`" + `tags` + "`" + ` query parameter. A missing parameter clears it.",
                "produces": ["application/json"],
                "tags": ["Boards"],
                "summary": "Load the selection from a URL",
                "parameters": [
                    {"type": "string", "description": "Board ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Selection, comma separated", "name": "tags", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.boardOnlyResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Boards"],
                "summary": "Clear the selection",
                "parameters": [
                    {"type": "string", "description": "Board ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.boardOnlyResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/boards/{id}/selection/toggle": {
            "post": {
                "description": "Selects the tag, or deselects it when already selected.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Boards"],
                "summary": "Toggle a tag",
                "parameters": [
                    {"type": "string", "description": "Board ID", "name": "id", "in": "path", "required": true},
                    {"description": "Tag", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.toggleReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.boardOnlyResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/tags": {
            "get": {
                "description": "Returns every tag in use with the number of tasks carrying it.",
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "List tags",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.tagsResp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/tasks": {
            "get": {
                "description": "Returns the tasks visible under the tag selection in ` + "`" + `tags` + "`" + ` (comma separated). An empty selection returns every task.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "List review tasks",
                "parameters": [
                    {"type": "string", "description": "Selected tags, comma separated", "name": "tags", "in": "query"},
                    {"type": "string", "description": "Match policy: and (default) or or", "name": "policy", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.listResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/tasks/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Get task detail",
                "parameters": [
                    {"type": "integer", "description": "Task ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"task": {"$ref": "#/definitions/http.TaskResp"}}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/tasks/{id}/tags": {
            "post": {
                "description": "Appends the trimmed tag. Blank tags and unknown ids are ignored and reported with changed=false.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Add a tag to a task",
                "parameters": [
                    {"type": "integer", "description": "Task ID", "name": "id", "in": "path", "required": true},
                    {"description": "Tag", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.addTagReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.tagMutationResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "delete": {
                "description": "Removes every occurrence of the tag (exact match). Absent tags and unknown ids are ignored.",
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Remove a tag from a task",
                "parameters": [
                    {"type": "integer", "description": "Task ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Tag to remove", "name": "tag", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.tagMutationResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {"200": {"description": "API is ready", "schema": {"type": "object", "additionalProperties": true}}}
            }
        }
    },
    "definitions": {
        "http.TaskResp": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "paper_title": {"type": "string"},
                "authors": {"type": "array", "items": {"type": "string"}},
                "tags": {"type": "array", "items": {"type": "string"}},
                "due_date": {"type": "string"}
            }
        },
        "http.addTagReq": {
            "type": "object",
            "properties": {"tag": {"type": "string"}}
        },
        "http.bookmarkResp": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "index": {"type": "integer"},
                "name": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "saved_at": {"type": "string"}
            }
        },
        "http.boardResp": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "selection": {"type": "array", "items": {"type": "string"}},
                "query": {"type": "string"},
                "bookmarks": {"type": "array", "items": {"$ref": "#/definitions/http.bookmarkResp"}},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "http.boardOnlyResp": {
            "type": "object",
            "properties": {"board": {"$ref": "#/definitions/http.boardResp"}}
        },
        "http.detailResp": {
            "type": "object",
            "properties": {
                "board": {"$ref": "#/definitions/http.boardResp"},
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/http.TaskResp"}},
                "count": {"type": "integer"},
                "total": {"type": "integer"},
                "policy": {"type": "string"}
            }
        },
        "http.listBookmarksResp": {
            "type": "object",
            "properties": {"bookmarks": {"type": "array", "items": {"$ref": "#/definitions/http.bookmarkResp"}}}
        },
        "http.listResp": {
            "type": "object",
            "properties": {
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/http.TaskResp"}},
                "count": {"type": "integer"},
                "total": {"type": "integer"},
                "selection": {"type": "array", "items": {"type": "string"}},
                "policy": {"type": "string"},
                "query": {"type": "string"}
            }
        },
        "http.saveBookmarkReq": {
            "type": "object",
            "properties": {"name": {"type": "string"}}
        },
        "http.saveBookmarkResp": {
            "type": "object",
            "properties": {
                "board": {"$ref": "#/definitions/http.boardResp"},
                "bookmark": {"$ref": "#/definitions/http.bookmarkResp"},
                "saved": {"type": "boolean"}
            }
        },
        "http.tagCountResp": {
            "type": "object",
            "properties": {"tag": {"type": "string"}, "count": {"type": "integer"}}
        },
        "http.tagMutationResp": {
            "type": "object",
            "properties": {
                "task": {"$ref": "#/definitions/http.TaskResp"},
                "found": {"type": "boolean"},
                "changed": {"type": "boolean"}
            }
        },
        "http.tagsResp": {
            "type": "object",
            "properties": {"tags": {"type": "array", "items": {"$ref": "#/definitions/http.tagCountResp"}}}
        },
        "http.toggleReq": {
            "type": "object",
            "required": ["tag"],
            "properties": {"tag": {"type": "string"}}
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Review Task Board API",
	Description:      "Peer-review task tracker: tag filtering, tag editing and bookmarked selections synchronized to the URL.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
