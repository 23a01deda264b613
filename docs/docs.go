// Package docs registers the OpenAPI document served under /swagger/.
// It is maintained by hand alongside the handler annotations.
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
        "/": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["meta"],
                "summary": "Welcome text",
                "responses": {
                    "200": {"description": "Welcome to Programming Learning Dashboard API", "schema": {"type": "string"}}
                }
            }
        },
        "/languages": {
            "get": {
                "description": "All languages sorted by name, in short form",
                "produces": ["application/json"],
                "tags": ["languages"],
                "summary": "List languages",
                "responses": {
                    "200": {"description": "success, languages, total", "schema": {"type": "object", "additionalProperties": true}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["languages"],
                "summary": "Create a language",
                "parameters": [
                    {"description": "Language", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreateLanguageRequest"}}
                ],
                "responses": {
                    "200": {"description": "success, created", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/languages/{id}": {
            "get": {
                "description": "Creates the language's progress record when it has none yet",
                "produces": ["application/json"],
                "tags": ["languages"],
                "summary": "Language with sections, subsections and progress",
                "parameters": [
                    {"type": "integer", "description": "Language ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"$ref": "#/definitions/models.LanguageView"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["languages"],
                "summary": "Delete a language with its sections, subsections and progress",
                "parameters": [
                    {"type": "integer", "description": "Language ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "success, deleted", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/languages/{id}/progress": {
            "get": {
                "produces": ["application/json"],
                "tags": ["progress"],
                "summary": "Stored progress of a language",
                "parameters": [
                    {"type": "integer", "description": "Language ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"$ref": "#/definitions/models.Progress"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            },
            "put": {
                "produces": ["application/json"],
                "tags": ["progress"],
                "summary": "Recompute a language's progress from its subsections",
                "parameters": [
                    {"type": "integer", "description": "Language ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"$ref": "#/definitions/models.Progress"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/sections": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sections"],
                "summary": "Create a section in a language",
                "parameters": [
                    {"description": "Section", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreateSectionRequest"}}
                ],
                "responses": {
                    "200": {"description": "success, created", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/sections/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["sections"],
                "summary": "Delete a section and its subsections",
                "parameters": [
                    {"type": "integer", "description": "Section ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "success, deleted", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sections"],
                "summary": "Rename or reorder a section",
                "parameters": [
                    {"type": "integer", "description": "Section ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.UpdateSectionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"$ref": "#/definitions/models.Section"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/subsections": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["subsections"],
                "summary": "Create a subsection in a section",
                "parameters": [
                    {"description": "Subsection", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreateSubsectionRequest"}}
                ],
                "responses": {
                    "200": {"description": "success, created", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/subsections/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["subsections"],
                "summary": "Subsection with its content",
                "parameters": [
                    {"type": "integer", "description": "Subsection ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"$ref": "#/definitions/models.Subsection"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["subsections"],
                "summary": "Delete a subsection",
                "parameters": [
                    {"type": "integer", "description": "Subsection ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "success, deleted", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            },
            "patch": {
                "description": "Does not recompute progress; call PUT /languages/{id}/progress afterwards",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["subsections"],
                "summary": "Update a subsection (e.g. mark it completed)",
                "parameters": [
                    {"type": "integer", "description": "Subsection ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.UpdateSubsectionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"$ref": "#/definitions/models.Subsection"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "helpers.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "error": {"type": "integer"},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "models.CreateLanguageRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "icon": {"type": "string", "maxLength": 255},
                "name": {"type": "string", "maxLength": 80}
            }
        },
        "models.CreateSectionRequest": {
            "type": "object",
            "required": ["language_id", "title"],
            "properties": {
                "language_id": {"type": "integer"},
                "order": {"type": "integer"},
                "title": {"type": "string", "maxLength": 120}
            }
        },
        "models.CreateSubsectionRequest": {
            "type": "object",
            "required": ["section_id", "title"],
            "properties": {
                "content": {"type": "string"},
                "is_completed": {"type": "boolean"},
                "order": {"type": "integer"},
                "section_id": {"type": "integer"},
                "title": {"type": "string", "maxLength": 120}
            }
        },
        "models.LanguageView": {
            "type": "object",
            "properties": {
                "icon": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "progress": {"type": "number"},
                "sections": {"type": "array", "items": {"$ref": "#/definitions/models.SectionView"}}
            }
        },
        "models.Progress": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "language_id": {"type": "integer"},
                "last_updated": {"type": "string"},
                "overall_percentage": {"type": "number"}
            }
        },
        "models.Section": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "language_id": {"type": "integer"},
                "order": {"type": "integer"},
                "title": {"type": "string"}
            }
        },
        "models.SectionView": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "order": {"type": "integer"},
                "subsections": {"type": "array", "items": {"$ref": "#/definitions/models.SubsectionShort"}},
                "title": {"type": "string"}
            }
        },
        "models.Subsection": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "id": {"type": "integer"},
                "is_completed": {"type": "boolean"},
                "order": {"type": "integer"},
                "section_id": {"type": "integer"},
                "title": {"type": "string"}
            }
        },
        "models.SubsectionShort": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "is_completed": {"type": "boolean"},
                "title": {"type": "string"}
            }
        },
        "models.UpdateSectionRequest": {
            "type": "object",
            "properties": {
                "order": {"type": "integer"},
                "title": {"type": "string", "maxLength": 120}
            }
        },
        "models.UpdateSubsectionRequest": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "is_completed": {"type": "boolean"},
                "order": {"type": "integer"},
                "title": {"type": "string", "maxLength": 120}
            }
        }
    }
}`

// SwaggerInfo is filled into docTemplate when the document is served.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Programming Learning Dashboard API",
	Description:      "Languages, their sections and subsections, and per-language completion progress.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
