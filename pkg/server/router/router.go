package router

import "github.com/gofiber/fiber/v2"

// ServerRouter wires one server type's routes onto its fiber app.
type ServerRouter interface {
	BuildRoutes(router *fiber.App) error
}
