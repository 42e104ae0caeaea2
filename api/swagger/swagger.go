package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Prepitus College Chances API",
        "description": "Lead-generation backend: admission chance analysis and report delivery",
        "version": "2.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Health", "description": "Service health"},
        {"name": "Reports", "description": "Admission report delivery"},
        {"name": "Catalog", "description": "College reference data"},
        {"name": "Leads", "description": "Captured lead exports"}
    ],
    "paths": {
        "/api/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/colleges": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List the college catalog",
                "responses": {
                    "200": {"description": "Catalog", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/store-user-and-send-report": {
            "post": {
                "tags": ["Reports"],
                "summary": "Store lead and send admission report",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StoreAndSendRequest"}}
                ],
                "responses": {
                    "200": {"description": "Report sent", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failure", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "500": {"description": "Store, asset, or delivery failure", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/send-college-report": {
            "post": {
                "tags": ["Reports"],
                "summary": "Send admission report without lead capture (legacy)",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SendReportRequest"}}
                ],
                "responses": {
                    "200": {"description": "Report sent", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failure", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "500": {"description": "Asset or delivery failure", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/leads/export": {
            "get": {
                "tags": ["Leads"],
                "summary": "Export captured leads as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Rendered export"},
                    "400": {"description": "Unknown format", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "UserPayload": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "gpa": {"type": "number"},
                "satScore": {"type": "integer"},
                "graduationYear": {"type": "string"}
            }
        },
        "SelectedCollege": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "combined": {"type": "string"},
                "admitRate": {"type": "string"},
                "gpaAvg": {"type": "string"}
            }
        },
        "StoreAndSendRequest": {
            "type": "object",
            "properties": {
                "userData": {"$ref": "#/definitions/UserPayload"},
                "selectedColleges": {"type": "array", "items": {"$ref": "#/definitions/SelectedCollege"}},
                "formData": {"$ref": "#/definitions/UserPayload"}
            }
        },
        "SendReportRequest": {
            "type": "object",
            "properties": {
                "userData": {"$ref": "#/definitions/UserPayload"},
                "selectedColleges": {"type": "array", "items": {"$ref": "#/definitions/SelectedCollege"}}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {"type": "object"},
                "error": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
