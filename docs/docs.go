// Package docs registra la especificación OpenAPI que sirve /swagger/*.
// Se regenera con `swag init -g cmd/api/main.go`.
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
		"/care-recipients": {
			"get": {
				"tags": [
					"care-recipients"
				],
				"summary": "Listar care recipient",
				"produces": [
					"application/json"
				],
				"parameters": [],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"401": {
						"description": "Unauthorized"
					}
				}
			},
			"post": {
				"tags": [
					"care-recipients"
				],
				"summary": "Crear care recipient",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"401": {
						"description": "Unauthorized"
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/care-recipients/{id}": {
			"get": {
				"tags": [
					"care-recipients"
				],
				"summary": "Obtener care recipient",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "string",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"401": {
						"description": "Unauthorized"
					}
				}
			},
			"put": {
				"tags": [
					"care-recipients"
				],
				"summary": "Actualizar care recipient",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "string",
						"required": true
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"401": {
						"description": "Unauthorized"
					}
				},
				"consumes": [
					"application/json"
				]
			},
			"delete": {
				"tags": [
					"care-recipients"
				],
				"summary": "Baja lógica de care recipient",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "string",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"401": {
						"description": "Unauthorized"
					}
				}
			}
		},
		"/medications": {
			"get": {
				"tags": [
					"medications"
				],
				"summary": "Listar medicación",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "query",
						"name": "careRecipientId",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"401": {
						"description": "Unauthorized"
					}
				}
			},
			"post": {
				"tags": [
					"medications"
				],
				"summary": "Crear medicación",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"401": {
						"description": "Unauthorized"
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/medications/{id}": {
			"get": {
				"tags": [
					"medications"
				],
				"summary": "Obtener medicación",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "string",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"401": {
						"description": "Unauthorized"
					}
				}
			},
			"put": {
				"tags": [
					"medications"
				],
				"summary": "Actualizar medicación",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "string",
						"required": true
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"401": {
						"description": "Unauthorized"
					}
				},
				"consumes": [
					"application/json"
				]
			},
			"delete": {
				"tags": [
					"medications"
				],
				"summary": "Baja lógica de medicación",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "string",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"401": {
						"description": "Unauthorized"
					}
				}
			}
		},
		"/schedules": {
			"get": {
				"tags": [
					"schedules"
				],
				"summary": "Listar schedule",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "query",
						"name": "medicationId",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"401": {
						"description": "Unauthorized"
					}
				}
			},
			"post": {
				"tags": [
					"schedules"
				],
				"summary": "Crear schedule",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"401": {
						"description": "Unauthorized"
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/schedules/{id}": {
			"get": {
				"tags": [
					"schedules"
				],
				"summary": "Obtener schedule",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "string",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"401": {
						"description": "Unauthorized"
					}
				}
			},
			"put": {
				"tags": [
					"schedules"
				],
				"summary": "Actualizar schedule",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "string",
						"required": true
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"401": {
						"description": "Unauthorized"
					}
				},
				"consumes": [
					"application/json"
				]
			},
			"delete": {
				"tags": [
					"schedules"
				],
				"summary": "Baja lógica de schedule",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "string",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"401": {
						"description": "Unauthorized"
					}
				}
			}
		},
		"/doses": {
			"get": {
				"tags": [
					"doses"
				],
				"summary": "Listar tomas",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "query",
						"name": "recipientId",
						"type": "string"
					},
					{
						"in": "query",
						"name": "status",
						"type": "string"
					},
					{
						"in": "query",
						"name": "startDate",
						"type": "string"
					},
					{
						"in": "query",
						"name": "endDate",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"401": {
						"description": "Unauthorized"
					}
				}
			},
			"post": {
				"tags": [
					"doses"
				],
				"summary": "Registrar toma",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"401": {
						"description": "Unauthorized"
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/doses/upcoming": {
			"get": {
				"tags": [
					"doses"
				],
				"summary": "Próximas tomas programadas",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "query",
						"name": "limit",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"401": {
						"description": "Unauthorized"
					}
				}
			}
		},
		"/doses/{id}": {
			"get": {
				"tags": [
					"doses"
				],
				"summary": "Obtener toma",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "string",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"401": {
						"description": "Unauthorized"
					}
				}
			}
		},
		"/doses/{id}/status": {
			"put": {
				"tags": [
					"doses"
				],
				"summary": "Actualizar estado de una toma",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "string",
						"required": true
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"401": {
						"description": "Unauthorized"
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/dashboard/upcoming-doses": {
			"get": {
				"tags": [
					"dashboard"
				],
				"summary": "Tomas de hoy",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "query",
						"name": "limit",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"401": {
						"description": "Unauthorized"
					}
				}
			}
		},
		"/dashboard/stats": {
			"get": {
				"tags": [
					"dashboard"
				],
				"summary": "Estadísticas del dashboard",
				"produces": [
					"application/json"
				],
				"parameters": [],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"401": {
						"description": "Unauthorized"
					}
				}
			}
		},
		"/auth/register": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Registrar usuario",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"401": {
						"description": "Unauthorized"
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/auth/login": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Login",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"401": {
						"description": "Unauthorized"
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/auth/profile": {
			"get": {
				"tags": [
					"auth"
				],
				"summary": "Perfil del usuario autenticado",
				"produces": [
					"application/json"
				],
				"parameters": [],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"401": {
						"description": "Unauthorized"
					}
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Medication Management API",
	Description:      "Seguimiento de medicación para care recipients: schedules, tomas y dashboard diario.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
