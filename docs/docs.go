// Package docs holds the Swagger document served at /swagger/.
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
    "definitions": {
        "model.BroadcastResponse": {
            "properties": {
                "result": {
                    "items": {
                        "type": "integer"
                    },
                    "type": "array"
                },
                "tx": {
                    "items": {
                        "type": "integer"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "model.ErrorResponse": {
            "properties": {
                "code": {
                    "type": "string"
                },
                "error": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "model.GenerateResponse": {
            "properties": {
                "message": {
                    "type": "string"
                },
                "mnemonic": {
                    "type": "string"
                },
                "success": {
                    "type": "boolean"
                },
                "wallet": {
                    "$ref": "#/definitions/model.WalletResponse"
                }
            },
            "type": "object"
        },
        "model.RecoverRequest": {
            "properties": {
                "mnemonic": {
                    "type": "string"
                }
            },
            "required": [
                "mnemonic"
            ],
            "type": "object"
        },
        "model.SignRequest": {
            "properties": {
                "account_number": {
                    "type": "string"
                },
                "chain_id": {
                    "type": "string"
                },
                "sequence": {
                    "type": "string"
                },
                "tx": {
                    "items": {
                        "type": "integer"
                    },
                    "type": "array"
                }
            },
            "required": [
                "tx"
            ],
            "type": "object"
        },
        "model.SignResponse": {
            "properties": {
                "signBytes": {
                    "type": "string"
                },
                "tx": {
                    "items": {
                        "type": "integer"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "model.WalletResponse": {
            "properties": {
                "QR": {
                    "description": "PNG of the address, base64",
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "hdPath": {
                    "type": "string"
                },
                "publicKey": {
                    "description": "compressed, hex",
                    "type": "string"
                }
            },
            "type": "object"
        }
    },
    "paths": {
        "/cosmos/address": {
            "get": {
                "description": "Returns address, public key and QR code of the wallet entered at startup",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.WalletResponse"
                        }
                    }
                },
                "summary": "Get signing wallet address",
                "tags": [
                    "cosmos"
                ]
            }
        },
        "/cosmos/broadcast": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Signs an unsigned amino JSON StdTx and posts it to the LCD /txs endpoint. No retries.",
                "parameters": [
                    {
                        "description": "Unsigned transaction",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/model.SignRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.BroadcastResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/model.ErrorResponse"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/model.ErrorResponse"
                        }
                    }
                },
                "summary": "Sign and broadcast transaction",
                "tags": [
                    "cosmos"
                ]
            }
        },
        "/cosmos/generate": {
            "post": {
                "description": "Generates a new 24 word mnemonic and derives its Cosmos address. The mnemonic is returned once and never stored.",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.GenerateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/model.ErrorResponse"
                        }
                    }
                },
                "summary": "Generate new wallet",
                "tags": [
                    "cosmos"
                ]
            }
        },
        "/cosmos/recover": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Derives address and public key of an existing mnemonic",
                "parameters": [
                    {
                        "description": "Mnemonic",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/model.RecoverRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.WalletResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/model.ErrorResponse"
                        }
                    }
                },
                "summary": "Recover wallet from mnemonic",
                "tags": [
                    "cosmos"
                ]
            }
        },
        "/cosmos/sign": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Signs an unsigned amino JSON StdTx with the startup wallet. Missing account_number or sequence are read from the LCD.",
                "parameters": [
                    {
                        "description": "Unsigned transaction",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/model.SignRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.SignResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/model.ErrorResponse"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/model.ErrorResponse"
                        }
                    }
                },
                "summary": "Sign transaction",
                "tags": [
                    "cosmos"
                ]
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
	Title:            "Cosmos Wallet API",
	Description:      "Local Cosmos wallet: key derivation, amino JSON signing and LCD broadcast.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
