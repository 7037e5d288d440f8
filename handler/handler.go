package handler

import (
	"github.com/sirupsen/logrus"

	"relay/logging"
)

var log *logrus.Logger

func init() {
	log = logging.GetLogger()
}
