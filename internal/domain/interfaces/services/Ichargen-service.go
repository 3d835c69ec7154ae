package Iservices

import "chargen-connector/internal/domain/dto"

// IChargenService dispatches an inbound turn and composes the response.
type IChargenService interface {
	HandleRequest(in *dto.ServiceInput) (*dto.ServiceOutput, error)
}
