package metaclient

import (
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/instagram-insights-etl/infrastructure/integrator/meta/domain"
)

// ParseErrorResponse tenta interpretar o corpo como o envelope de erro da Graph API
func ParseErrorResponse(body []byte) (*metadomain.ErrorResponse, error) {
	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil {
		return nil, err
	}
	return &errorResp, nil
}

// HandleResponse devolve o corpo das respostas 2xx e um *metadomain.APIError para as demais
func HandleResponse(path string, resp *resty.Response) ([]byte, error) {
	body := resp.Body()

	if resp.IsSuccess() {
		return body, nil
	}

	apiErr := &metadomain.APIError{
		StatusCode: resp.StatusCode(),
		Path:       path,
		Body:       string(body),
	}

	if errorResp, err := ParseErrorResponse(body); err == nil && errorResp.Error.Message != "" {
		apiErr.Details = &errorResp.Error
	}

	fields := logrus.Fields{
		"path":        path,
		"status_code": apiErr.StatusCode,
	}
	if apiErr.Details != nil {
		fields["meta_code"] = apiErr.Details.Code
		fields["meta_subcode"] = apiErr.Details.ErrorSubcode
		fields["fbtrace_id"] = apiErr.Details.FBTraceID
	}

	if apiErr.IsTokenExpired() {
		logrus.WithFields(fields).Error("Token do Meta expirado ou inválido")
	} else {
		logrus.WithFields(fields).Error("Erro na resposta da API do Meta")
	}

	return nil, apiErr
}
