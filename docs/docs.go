package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "Kanban Board API Documentation",
        "title": "Kanban Board API",
        "version": "0.1.0"
    },
    "host": "localhost:8000",
    "basePath": "/",
    "schemes": ["http"],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "description": "Check if server is running",
                "responses": {
                    "200": {
                        "description": "Server is healthy"
                    }
                }
            }
        },
        "/api/tasks": {
            "get": {
                "tags": ["Tasks"],
                "summary": "List Tasks",
                "description": "List tasks with optional filters, ordered by status and position",
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "query",
                        "name": "status",
                        "type": "string",
                        "enum": ["todo", "in_progress", "done"],
                        "description": "Filter by status"
                    },
                    {
                        "in": "query",
                        "name": "priority",
                        "type": "string",
                        "description": "Filter by priority"
                    },
                    {
                        "in": "query",
                        "name": "assignee",
                        "type": "string",
                        "description": "Filter by assignee"
                    },
                    {
                        "in": "query",
                        "name": "tags",
                        "type": "array",
                        "items": {"type": "string"},
                        "collectionFormat": "multi",
                        "description": "Filter by tags, any match"
                    },
                    {
                        "in": "query",
                        "name": "search",
                        "type": "string",
                        "description": "Search in title and description"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Tasks and total count"
                    },
                    "422": {
                        "description": "Invalid status value"
                    }
                }
            },
            "post": {
                "tags": ["Tasks"],
                "summary": "Create Task",
                "description": "Create a new task on the board",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "task",
                        "description": "Task data",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "title": {
                                    "type": "string",
                                    "example": "Set up the CI pipeline"
                                },
                                "description": {
                                    "type": "string",
                                    "example": "Run the test suite on every push"
                                },
                                "status": {
                                    "type": "string",
                                    "enum": ["todo", "in_progress", "done"],
                                    "example": "todo"
                                },
                                "priority": {
                                    "type": "string",
                                    "enum": ["low", "medium", "high", "critical"],
                                    "example": "medium"
                                },
                                "tags": {
                                    "type": "array",
                                    "items": {"type": "string"},
                                    "example": ["infra"]
                                },
                                "assignee": {
                                    "type": "string",
                                    "example": "alex"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Task created"
                    },
                    "422": {
                        "description": "Invalid input"
                    }
                }
            }
        },
        "/api/tasks/{task_id}": {
            "get": {
                "tags": ["Tasks"],
                "summary": "Get Task",
                "description": "Get a single task by its ID",
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "path",
                        "name": "task_id",
                        "type": "string",
                        "required": true,
                        "description": "Task ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "The task"
                    },
                    "404": {
                        "description": "Task not found"
                    }
                }
            },
            "patch": {
                "tags": ["Tasks"],
                "summary": "Update Task",
                "description": "Apply a partial update to a task, fields left out stay unchanged",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "path",
                        "name": "task_id",
                        "type": "string",
                        "required": true,
                        "description": "Task ID"
                    },
                    {
                        "in": "body",
                        "name": "patch",
                        "description": "Fields to update",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "title": {
                                    "type": "string",
                                    "example": "Updated title"
                                },
                                "status": {
                                    "type": "string",
                                    "enum": ["todo", "in_progress", "done"]
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated task"
                    },
                    "400": {
                        "description": "No fields to update"
                    },
                    "404": {
                        "description": "Task not found"
                    }
                }
            },
            "delete": {
                "tags": ["Tasks"],
                "summary": "Delete Task",
                "description": "Permanently delete a task",
                "parameters": [
                    {
                        "in": "path",
                        "name": "task_id",
                        "type": "string",
                        "required": true,
                        "description": "Task ID"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Task deleted"
                    },
                    "404": {
                        "description": "Task not found"
                    }
                }
            }
        },
        "/api/tasks/{task_id}/move": {
            "post": {
                "tags": ["Tasks"],
                "summary": "Move Task",
                "description": "Move a task to another status column at the given position",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "path",
                        "name": "task_id",
                        "type": "string",
                        "required": true,
                        "description": "Task ID"
                    },
                    {
                        "in": "body",
                        "name": "target",
                        "description": "Target status and position",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "status": {
                                    "type": "string",
                                    "enum": ["todo", "in_progress", "done"],
                                    "example": "in_progress"
                                },
                                "position": {
                                    "type": "integer",
                                    "example": 0
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Moved task"
                    },
                    "404": {
                        "description": "Task not found"
                    }
                }
            }
        },
        "/api/tasks/reorder/{status}": {
            "post": {
                "tags": ["Tasks"],
                "summary": "Reorder Tasks",
                "description": "Rewrite task positions inside one status column to match the given order",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "path",
                        "name": "status",
                        "description": "Status column",
                        "required": true,
                        "type": "string",
                        "enum": ["todo", "in_progress", "done"]
                    },
                    {
                        "in": "body",
                        "name": "order",
                        "description": "Ordered task IDs",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {"type": "string"},
                            "example": ["task-1a2b3c4d", "task-5e6f7a8b"]
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Tasks reordered successfully"
                    },
                    "400": {
                        "description": "Failed to reorder tasks"
                    },
                    "422": {
                        "description": "Invalid status value"
                    }
                }
            }
        },
        "/api/ai/analyze": {
            "post": {
                "tags": ["AI"],
                "summary": "Analyze Task",
                "description": "Run a task through the analysis provider",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "description": "Optional task reference",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "task_id": {
                                    "type": "string",
                                    "example": "task-1a2b3c4d"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Analysis result"
                    },
                    "404": {
                        "description": "Task not found"
                    },
                    "503": {
                        "description": "Provider unavailable"
                    }
                }
            }
        },
        "/api/drive/upload": {
            "post": {
                "tags": ["Drive"],
                "summary": "Upload Report",
                "description": "Upload a task report into the reports folder",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "header",
                        "name": "Authorization",
                        "type": "string",
                        "required": true,
                        "description": "Access token"
                    },
                    {
                        "in": "body",
                        "name": "report",
                        "description": "Report data",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "filename": {
                                    "type": "string",
                                    "example": "weekly-report.md"
                                },
                                "content": {
                                    "type": "string",
                                    "example": "# Weekly report"
                                },
                                "task_title": {
                                    "type": "string",
                                    "example": "Set up the CI pipeline"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Report uploaded"
                    },
                    "401": {
                        "description": "Authorization header required"
                    },
                    "503": {
                        "description": "Integration unavailable"
                    }
                }
            }
        },
        "/api/drive/reports": {
            "get": {
                "tags": ["Drive"],
                "summary": "List Reports",
                "description": "List the report files in the reports folder",
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "header",
                        "name": "Authorization",
                        "type": "string",
                        "required": true,
                        "description": "Access token"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Reports and count"
                    },
                    "401": {
                        "description": "Authorization header required"
                    },
                    "503": {
                        "description": "Integration unavailable"
                    }
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Kanban Board API",
	Description:      "Kanban Board API Documentation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
