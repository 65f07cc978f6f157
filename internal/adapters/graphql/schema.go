package graphql

import (
	"github.com/graphql-go/graphql"
)

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"email":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"name":      &graphql.Field{Type: graphql.String},
		"createdAt": &graphql.Field{Type: graphql.String},
		"updatedAt": &graphql.Field{Type: graphql.String},
	},
})

var authPayloadType = graphql.NewObject(graphql.ObjectConfig{
	Name: "AuthPayload",
	Fields: graphql.Fields{
		"user":  &graphql.Field{Type: graphql.NewNonNull(userType)},
		"token": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var projectType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Project",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.Field{Type: graphql.String},
		"userId":      &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"createdAt":   &graphql.Field{Type: graphql.String},
		"updatedAt":   &graphql.Field{Type: graphql.String},
	},
})

var taskType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Task",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"title":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"status":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"priority":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"deadline":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"overdue":   &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"projectId": &graphql.Field{Type: graphql.ID},
		"project":   &graphql.Field{Type: projectType},
		"userId":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"createdAt": &graphql.Field{Type: graphql.String},
		"updatedAt": &graphql.Field{Type: graphql.String},
	},
})

var taskPageType = graphql.NewObject(graphql.ObjectConfig{
	Name: "TaskPage",
	Fields: graphql.Fields{
		"tasks":       &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(taskType)))},
		"total":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"totalPages":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"currentPage": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"limit":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var codeBlockType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CodeBlock",
	Fields: graphql.Fields{
		"language": &graphql.Field{Type: graphql.String},
		"code":     &graphql.Field{Type: graphql.String},
	},
})

var noteType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Note",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"userId":      &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"taskId":      &graphql.Field{Type: graphql.ID},
		"projectId":   &graphql.Field{Type: graphql.ID},
		"eventId":     &graphql.Field{Type: graphql.ID},
		"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.Field{Type: graphql.String},
		"textContent": &graphql.Field{Type: graphql.String},
		"codeBlocks":  &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(codeBlockType)))},
		"drawingData": &graphql.Field{Type: graphql.String},
		"type":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"createdAt":   &graphql.Field{Type: graphql.String},
		"updatedAt":   &graphql.Field{Type: graphql.String},
	},
})

var taskFilterInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "TaskFilter",
	Fields: graphql.InputObjectConfigFieldMap{
		"projectId":     &graphql.InputObjectFieldConfig{Type: graphql.ID},
		"status":        &graphql.InputObjectFieldConfig{Type: graphql.String},
		"priority":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"deadlineStart": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"deadlineEnd":   &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var codeBlockInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CodeBlockInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"language": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"code":     &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var noteInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "NoteInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"textContent": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"codeBlocks":  &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(codeBlockInput))},
		"drawingData": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"type":        &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

func idArg() *graphql.ArgumentConfig {
	return &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)}
}

func optArg(t graphql.Input) *graphql.ArgumentConfig {
	return &graphql.ArgumentConfig{Type: t}
}

// NewSchema builds the executable schema around r
func NewSchema(r *Resolver) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"me":       &graphql.Field{Type: userType, Resolve: r.me},
			"projects": &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(projectType))), Resolve: r.listProjects},
			"project": &graphql.Field{
				Type:    projectType,
				Args:    graphql.FieldConfigArgument{"id": idArg()},
				Resolve: r.project,
			},
			"tasks": &graphql.Field{
				Type: graphql.NewNonNull(taskPageType),
				Args: graphql.FieldConfigArgument{
					"filter": optArg(taskFilterInput),
					"page":   optArg(graphql.Int),
					"limit":  optArg(graphql.Int),
				},
				Resolve: r.listTasks,
			},
			"task": &graphql.Field{
				Type:    taskType,
				Args:    graphql.FieldConfigArgument{"id": idArg()},
				Resolve: r.task,
			},
			"note": &graphql.Field{
				Type: noteType,
				Args: graphql.FieldConfigArgument{
					"id":     optArg(graphql.ID),
					"taskId": optArg(graphql.ID),
				},
				Resolve: r.note,
			},
			"noteById": &graphql.Field{
				Type:    noteType,
				Args:    graphql.FieldConfigArgument{"id": idArg()},
				Resolve: r.noteByID,
			},
			"tasksWithNotes": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.ID))),
				Args: graphql.FieldConfigArgument{
					"taskIds": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.ID)))},
				},
				Resolve: r.tasksWithNotes,
			},
			"myNotes": &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(noteType))), Resolve: r.myNotes},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signup": &graphql.Field{
				Type: authPayloadType,
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"name":     optArg(graphql.String),
				},
				Resolve: r.signup,
			},
			"login": &graphql.Field{
				Type: authPayloadType,
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.login,
			},
			"logout": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean), Resolve: r.logout},
			"createProject": &graphql.Field{
				Type: projectType,
				Args: graphql.FieldConfigArgument{
					"name":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"description": optArg(graphql.String),
				},
				Resolve: r.createProject,
			},
			"updateProject": &graphql.Field{
				Type: projectType,
				Args: graphql.FieldConfigArgument{
					"id":          idArg(),
					"name":        optArg(graphql.String),
					"description": optArg(graphql.String),
				},
				Resolve: r.updateProject,
			},
			"deleteProject": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Boolean),
				Args:    graphql.FieldConfigArgument{"id": idArg()},
				Resolve: r.deleteProject,
			},
			"createTask": &graphql.Field{
				Type: taskType,
				Args: graphql.FieldConfigArgument{
					"title":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"status":    optArg(graphql.String),
					"priority":  optArg(graphql.String),
					"deadline":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"projectId": optArg(graphql.ID),
				},
				Resolve: r.createTask,
			},
			"updateTask": &graphql.Field{
				Type: taskType,
				Args: graphql.FieldConfigArgument{
					"id":        idArg(),
					"title":     optArg(graphql.String),
					"status":    optArg(graphql.String),
					"priority":  optArg(graphql.String),
					"deadline":  optArg(graphql.String),
					"projectId": optArg(graphql.ID),
				},
				Resolve: r.updateTask,
			},
			"deleteTask": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Boolean),
				Args:    graphql.FieldConfigArgument{"id": idArg()},
				Resolve: r.deleteTask,
			},
			"upsertNote": &graphql.Field{
				Type: noteType,
				Args: graphql.FieldConfigArgument{
					"id":        optArg(graphql.ID),
					"taskId":    optArg(graphql.ID),
					"projectId": optArg(graphql.ID),
					"eventId":   optArg(graphql.ID),
					"input":     optArg(noteInputType),
				},
				Resolve: r.upsertNote,
			},
			"deleteNote": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id":     optArg(graphql.ID),
					"taskId": optArg(graphql.ID),
				},
				Resolve: r.deleteNote,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
