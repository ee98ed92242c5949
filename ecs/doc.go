// Package ecs provides ECS adapters for the canvas engine.
package ecs
