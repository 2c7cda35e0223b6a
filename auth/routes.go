package auth

import (
	"net/http"
	"strings"

	cn "github.com/LerianStudio/lib-auth-go/constant"
)

// Operation names an endpoint of the auth API.
type Operation string

const (
	OpLogin                 Operation = "login"
	OpLogout                Operation = "logout"
	OpShow                  Operation = "show"
	OpVerifyOTP             Operation = "verifyOTP"
	OpChangePassword        Operation = "changePassword"
	OpResendVerifyOTP       Operation = "resendVerifyOTP"
	OpScheduleSessionVerify Operation = "scheduleSessionVerify"
	OpResendSessionOTP      Operation = "resendSessionOTP"
	OpVerifyID              Operation = "verifyId"
)

type route struct {
	method  string
	segment string
	// unrooted segments are used as-is, without the base path
	unrooted bool
}

var operations = []Operation{
	OpLogin,
	OpLogout,
	OpShow,
	OpVerifyOTP,
	OpChangePassword,
	OpResendVerifyOTP,
	OpScheduleSessionVerify,
	OpResendSessionOTP,
	OpVerifyID,
}

var routes = map[Operation]route{
	OpLogin:                 {method: http.MethodPost, segment: cn.LoginPath},
	OpLogout:                {method: http.MethodPost, segment: cn.LogoutPath},
	OpShow:                  {method: http.MethodGet, segment: cn.ProfilePath},
	OpVerifyOTP:             {method: http.MethodPost, segment: cn.DocumentVerifyPath},
	OpChangePassword:        {method: http.MethodPost, segment: cn.ChangePasswordPath},
	OpResendVerifyOTP:       {method: http.MethodPost, segment: cn.DocumentResendOTPPath},
	OpScheduleSessionVerify: {method: http.MethodPost, segment: cn.ScheduleSessionVerifyPath},
	OpResendSessionOTP:      {method: http.MethodPost, segment: cn.SessionResendOTPPath},
	OpVerifyID:              {method: http.MethodPost, segment: cn.VerifyUserPath, unrooted: true},
}

// Operations lists every operation in endpoint table order.
func Operations() []Operation {
	out := make([]Operation, len(operations))
	copy(out, operations)

	return out
}

func (r route) path(base string) string {
	base = strings.Trim(base, "/")
	if r.unrooted || base == "" {
		return r.segment
	}

	return base + "/" + r.segment
}
