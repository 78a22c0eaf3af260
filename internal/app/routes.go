package app

import (
	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/handlers"
)

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(a.logger, a.session, a.ws)
	base := config.BasePath()

	a.router.HandleFunc("GET "+base+"/game", game.Fetch)
	a.router.HandleFunc("POST "+base+"/game", game.NewGame)
	a.router.HandleFunc("POST "+base+"/game/reveal", game.Reveal)
	a.router.HandleFunc("POST "+base+"/game/flag", game.Flag)
	a.router.HandleFunc("GET "+base+"/game/connect", game.ConnectWS)
	a.router.HandleFunc("GET "+base+"/difficulties", game.Difficulties)
}
