package handler

import (
	"github.com/go-telegram/bot"
	"github.com/set-night/crystalbot/internal/telegram"
)

// Register registers all command and callback handlers on the bot instance.
func (h *Handler) Register() {
	// Commands
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/admin", bot.MatchTypePrefix, h.handleAdmin)

	// Menu buttons
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, telegram.BtnProfile, bot.MatchTypeExact, h.handleProfile)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, telegram.BtnInvite, bot.MatchTypeExact, h.handleInvite)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, telegram.BtnPhoto, bot.MatchTypeExact, h.handlePhotoButton)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, telegram.BtnVideo, bot.MatchTypeExact, h.handleVideoButton)

	// Media callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, telegram.CallbackGetPhoto, bot.MatchTypeExact, h.handlePhotoCallback)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, telegram.CallbackMorePhoto, bot.MatchTypeExact, h.handlePhotoCallback)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, telegram.CallbackGetVideo, bot.MatchTypeExact, h.handleVideoCallback)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, telegram.CallbackMoreVideo, bot.MatchTypeExact, h.handleVideoCallback)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, telegram.CallbackMenu, bot.MatchTypeExact, h.handleMenuCallback)
}
