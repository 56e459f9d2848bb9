package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"commune/internal/apperr"
	"commune/internal/handler"
	"commune/internal/httpx"
	"commune/internal/middleware"
	"commune/internal/pkg"
	"commune/internal/repository"
	"commune/internal/service"
)

// Deps collects everything the API needs; repositories come in as
// interfaces so tests can substitute their own.
type Deps struct {
	Users        repository.UserRepository
	Roles        repository.RoleRepository
	Communities  repository.CommunityRepository
	Members      repository.MemberRepository
	Sessions     repository.SessionStore // optional
	Store        sessions.Store
	Producer     *pkg.KafkaProducer // optional
	SMTP         *pkg.SMTPConfig    // optional
	AllowOrigins []string
	Log          *zap.Logger
}

func New(d Deps) *gin.Engine {
	userSvc := service.NewUserService(d.Users, d.Sessions, d.SMTP, d.Log)
	roleSvc := service.NewRoleService(d.Roles)
	communitySvc := service.NewCommunityService(d.Communities, d.Members, d.Roles, d.Users, d.Log)
	memberSvc := service.NewMemberService(d.Members, d.Users, d.Roles, d.Communities, d.Producer, d.Log)

	auth := handler.NewAuthHandler(userSvc, d.Store, d.Log)
	role := handler.NewRoleHandler(roleSvc)
	community := handler.NewCommunityHandler(communitySvc)
	member := handler.NewMemberHandler(memberSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	if len(d.AllowOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     d.AllowOrigins,
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type"},
			AllowCredentials: true,
		}))
	}
	r.Use(middleware.Sessions(d.Store))

	v1 := r.Group("/api/v1")

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/signup", middleware.ValidateJSON[handler.SignUpReq](), auth.SignUp)
		authGroup.POST("/signin", middleware.ValidateJSON[handler.SignInReq](), auth.SignIn)
		authGroup.POST("/signout", middleware.RequireAuth(apperr.CodeNotSignedIn), auth.SignOut)
		authGroup.GET("/me", middleware.RequireAuth(apperr.CodeNotSignedIn), auth.Me)
	}

	roleGroup := v1.Group("/role")
	{
		roleGroup.POST("", middleware.ValidateJSON[handler.RoleCreateReq](), role.Create)
		roleGroup.GET("", role.List)
	}

	communityGroup := v1.Group("/community")
	{
		communityGroup.POST("",
			middleware.ValidateJSON[handler.CommunityCreateReq](),
			middleware.RequireAuth(apperr.CodeNotAllowedAccess),
			community.Create)
		communityGroup.GET("", community.List)
		communityGroup.GET("/me/owner", middleware.RequireAuth(apperr.CodeNotAllowedAccess), community.ListOwned)
		communityGroup.GET("/me/member", middleware.RequireAuth(apperr.CodeNotAllowedAccess), community.ListJoined)
		communityGroup.GET("/:id/members", community.ListMembers)
	}

	memberGroup := v1.Group("/member")
	{
		memberGroup.POST("",
			middleware.ValidateJSON[handler.MemberAddReq](),
			middleware.RequireAuth(apperr.CodeNotAllowedAccess),
			middleware.RequireCommunityOwner(d.Users, d.Communities),
			member.Add)
		memberGroup.DELETE("/:id",
			middleware.RequireAuth(apperr.CodeNotAllowedAccess),
			middleware.RequireOwnerOrModerator(d.Users, d.Communities, d.Members, d.Roles),
			member.Remove)
	}

	r.NoRoute(func(c *gin.Context) {
		httpx.Fail(c, apperr.NewGeneral("Route not found.", apperr.CodeResourceNotFound))
	})

	return r
}
