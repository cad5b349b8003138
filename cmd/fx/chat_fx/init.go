package chat_fx

import (
	"go.uber.org/fx"

	"voyago/internal/api/controllers"
	"voyago/internal/infra"
	"voyago/internal/services"
)

var Module = fx.Provide(provideChatService, provideChatController)

func provideChatService(generator infra.TextGenerator) services.ChatServiceInterface {
	return services.NewChatService(generator)
}

func provideChatController(chatService services.ChatServiceInterface) *controllers.ChatController {
	return controllers.NewChatController(chatService)
}
