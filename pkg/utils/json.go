package utils

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/sirupsen/logrus"
)

// PrettyJson formata um valor (ou um []byte já em JSON) de forma indentada para logs e mensagens de erro
func PrettyJson(in any) string {
	var buffer []byte
	var err error

	if reflect.TypeOf(in) != reflect.TypeOf([]byte{}) {
		buffer, err = json.Marshal(in)
		if err != nil {
			logrus.WithError(err).Debug("PrettyJson: erro ao serializar valor")
			return ""
		}
	} else {
		buffer = in.([]byte)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buffer, "", "\t"); err != nil {
		return string(buffer)
	}

	return out.String()
}
