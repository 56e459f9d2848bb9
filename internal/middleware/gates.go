package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"commune/internal/apperr"
	"commune/internal/httpx"
	"commune/internal/model"
	"commune/internal/repository"
)

// RequireAuth gate: the caller must be resolved. The code varies by call
// site: NOT_SIGNEDIN on the auth surface, NOT_ALLOWED_ACCESS elsewhere.
func RequireAuth(code apperr.Code) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CallerID(c); !ok {
			msg := "You are not allowed to access this resource."
			if code == apperr.CodeNotSignedIn {
				msg = "You are not signed in."
			}
			httpx.Fail(c, apperr.NewGeneral(msg, code))
			return
		}
		c.Next()
	}
}

// RequireCommunityOwner gate: the caller must own the community named by
// the body field `community`.
func RequireCommunityOwner(users repository.UserRepository, communities repository.CommunityRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		callerID, _ := CallerID(c)
		caller, err := users.FindByID(ctx, callerID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				httpx.Fail(c, apperr.NewGeneral("User not found.", apperr.CodeResourceNotFound))
				return
			}
			httpx.Fail(c, err)
			return
		}

		var body struct {
			Community string `json:"community"`
		}
		// body already parsed by the validation stage; the bind is cached
		_ = c.ShouldBindBodyWith(&body, binding.JSON)

		community, err := communities.FindByID(ctx, body.Community)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				httpx.Fail(c, apperr.Field("community", "Community not found.", apperr.CodeResourceNotFound))
				return
			}
			httpx.Fail(c, err)
			return
		}

		if community.UserID != caller.ID {
			httpx.Fail(c, apperr.NewGeneral("You are not allowed to access this resource.", apperr.CodeNotAllowedAccess))
			return
		}
		c.Next()
	}
}

// RequireOwnerOrModerator gate: the caller must own the community of the
// membership named by the path param, or hold the "Community Moderator"
// role in it. A missing moderator role row simply means not-a-moderator.
func RequireOwnerOrModerator(
	users repository.UserRepository,
	communities repository.CommunityRepository,
	members repository.MemberRepository,
	roles repository.RoleRepository,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		callerID, _ := CallerID(c)
		caller, err := users.FindByID(ctx, callerID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				httpx.Fail(c, apperr.NewGeneral("User not found.", apperr.CodeResourceNotFound))
				return
			}
			httpx.Fail(c, err)
			return
		}

		member, err := members.FindByID(ctx, c.Param("id"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				httpx.Fail(c, apperr.NewGeneral("Member not found.", apperr.CodeResourceNotFound))
				return
			}
			httpx.Fail(c, err)
			return
		}

		community, err := communities.FindByID(ctx, member.CommunityID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				httpx.Fail(c, apperr.Field("community", "Community not found.", apperr.CodeResourceNotFound))
				return
			}
			httpx.Fail(c, err)
			return
		}

		if community.UserID == caller.ID {
			c.Next()
			return
		}

		role, err := roles.FindByName(ctx, model.RoleCommunityModerator)
		if err == nil {
			ok, mErr := members.Exists(ctx, community.ID, caller.ID, role.ID)
			if mErr != nil {
				httpx.Fail(c, mErr)
				return
			}
			if ok {
				c.Next()
				return
			}
		} else if !errors.Is(err, repository.ErrNotFound) {
			httpx.Fail(c, err)
			return
		}

		httpx.Fail(c, apperr.NewGeneral("You are not allowed to access this resource.", apperr.CodeNotAllowedAccess))
	}
}
