// Package docs registers the generated OpenAPI document served at /swagger/.
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
        "/transaction": {
            "get": {
                "produces": ["application/json"],
                "tags": ["transaction"],
                "summary": "Describe the minting endpoint",
                "description": "Returns the label and icon a wallet displays before requesting the real transaction",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/model.TransactionInfoResponse"}
                    }
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["transaction"],
                "summary": "Build a partially signed mint transaction",
                "description": "Builds the mint transaction for the posted account, tagged with the reference key, signed by the asset keypair only",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Reference public key (base58)",
                        "name": "reference",
                        "in": "query",
                        "required": true
                    },
                    {
                        "description": "Signer account",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/model.TransactionRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/model.TransactionResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/model.ErrorResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/model.ErrorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "model.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "model.TransactionInfoResponse": {
            "type": "object",
            "properties": {
                "icon": {"type": "string"},
                "label": {"type": "string"}
            }
        },
        "model.TransactionRequest": {
            "type": "object",
            "properties": {
                "account": {"type": "string"}
            }
        },
        "model.TransactionResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "transaction": {"type": "string"}
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
	Title:            "Solana Pay NFT Minter API",
	Description:      "Builds and serves partially signed NFT mint transactions for Solana Pay wallets.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
