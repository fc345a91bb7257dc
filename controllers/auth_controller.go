package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/AtifZafar596/Jetak-food-backend-api/pkg/resp"
	"github.com/AtifZafar596/Jetak-food-backend-api/services"
	"github.com/AtifZafar596/Jetak-food-backend-api/utils"
)

type AuthController struct {
	Svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

type requestCodeReq struct {
	Phone string `json:"phone" binding:"required"`
}

// POST /auth/otp/request
func (ac *AuthController) RequestCode(c *gin.Context) {
	var req requestCodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ac.Svc.RequestCode(c.Request.Context(), req.Phone); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"sent": true})
}

type verifyCodeReq struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// POST /auth/otp/verify
func (ac *AuthController) VerifyCode(c *gin.Context) {
	var req verifyCodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := ac.Svc.VerifyCode(c.Request.Context(), req.Phone, req.Code)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

type adminLoginReq struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/admin/login
func (ac *AuthController) AdminLogin(c *gin.Context) {
	var req adminLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := ac.Svc.AdminLogin(req.Phone, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// POST /auth/logout
func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.Svc.Logout(c.Request.Context(), utils.CurrentTokenID(c)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"loggedOut": true})
}

// GET /auth/me
func (ac *AuthController) Me(c *gin.Context) {
	user, err := ac.Svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, user)
}

type updateMeReq struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
}

// PATCH /auth/me
func (ac *AuthController) UpdateMe(c *gin.Context) {
	var req updateMeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	updates := map[string]any{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}
	user, err := ac.Svc.UpdateProfile(utils.CurrentUserID(c), updates)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, user)
}
