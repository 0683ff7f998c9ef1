package router

import (
	"folha/config"
	"folha/controllers"
	"folha/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Initialize wires all routes and middlewares.
// Public routes (login/register) + authenticated routes, same URL
// surface the front end already consumes.
func Initialize(r *gin.Engine, cfg config.Configuration) {
	controllers.SetConfigurations(cfg)

	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	// Public (no auth)
	r.GET("/login", Logger(), controllers.LoginForm)
	r.POST("/login", Logger(), controllers.Login)
	r.GET("/register", Logger(), controllers.RegisterForm)
	r.POST("/register", Logger(), controllers.Register)

	// Authenticated routes (session required)
	auth := r.Group("")
	auth.Use(controllers.AuthRequired())

	auth.GET("/", Logger(), controllers.Home)
	auth.GET("/logout", Logger(), controllers.Logout)

	// Pessoa
	auth.GET("/cadastrar/pessoa", Logger(), controllers.PessoaForm)
	auth.POST("/cadastrar/pessoa", Logger(), controllers.CreatePessoa)
	auth.GET("/listar/pessoa", Logger(), controllers.GetPessoas)
	auth.GET("/editar/pessoa/:id", Logger(), controllers.EditPessoaForm)
	auth.POST("/editar/pessoa/:id", Logger(), controllers.UpdatePessoa)
	auth.POST("/deletar/pessoa/:id", Logger(), controllers.DeletePessoa)

	// Profissao
	auth.GET("/cadastrar/profissao", Logger(), controllers.ProfissaoForm)
	auth.POST("/cadastrar/profissao", Logger(), controllers.CreateProfissao)
	auth.GET("/listar/profissao", Logger(), controllers.GetProfissoes)
	auth.GET("/editar/profissao/:id", Logger(), controllers.EditProfissaoForm)
	auth.POST("/editar/profissao/:id", Logger(), controllers.UpdateProfissao)
	auth.POST("/deletar/profissao/:id", Logger(), controllers.DeleteProfissao)

	// Folha de pagamento
	auth.GET("/cadastrar/folha-pagamento", Logger(), controllers.FolhaPagamentoForm)
	auth.POST("/cadastrar/folha-pagamento", Logger(), controllers.CreateFolhaPagamento)
	auth.GET("/listar/folha-pagamento", Logger(), controllers.GetFolhasPagamento)
	auth.GET("/editar/folha-pagamento/:id", Logger(), controllers.EditFolhaPagamentoForm)
	auth.POST("/editar/folha-pagamento/:id", Logger(), controllers.UpdateFolhaPagamento)
	auth.POST("/deletar/folha-pagamento/:id", Logger(), controllers.DeleteFolhaPagamento)

	log.Info().Msg("Routes initialized")
}
