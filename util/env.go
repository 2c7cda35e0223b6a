package util

import (
	"errors"

	cn "github.com/LerianStudio/lib-auth-go/constant"
	"github.com/LerianStudio/lib-auth-go/model"
	"github.com/LerianStudio/lib-auth-go/pkg"
	"github.com/LerianStudio/lib-commons/commons"
	"github.com/LerianStudio/lib-commons/commons/log"
)

// ValidateEnvVariables checks that the environment supplied the required settings.
func ValidateEnvVariables(cfg *model.Config, l log.Logger) error {
	if cfg == nil {
		return errors.New("auth client config is nil")
	}

	if commons.IsNilOrEmpty(&cfg.BaseURL) {
		err := pkg.ValidateBusinessError(cn.ErrMissingBaseURL, "Config")

		l.Error(err.Error())

		return err
	}

	return nil
}
