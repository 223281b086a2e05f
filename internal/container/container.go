package container

import (
	app "line-vision/internal/application"
	"line-vision/internal/domain/entity"
	"line-vision/internal/domain/port"
)

type Container struct {
	UserService           *app.UserService
	ClassificationService *app.ClassificationService
}

func New(userRepo port.UserRepository, params entity.Params, finder port.ContourFinder, loader port.FrameLoader, renderer port.Renderer) *Container {
	userService := app.NewUserService(userRepo)
	classificationService := app.NewClassificationService(params, finder, loader, renderer)

	return &Container{
		UserService:           userService,
		ClassificationService: classificationService,
	}
}
