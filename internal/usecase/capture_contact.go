package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/siyam-display/catalog-api/internal/entity"
	"github.com/siyam-display/catalog-api/internal/infra/queue"
)

// CaptureContactUseCase validates and persists a lead submission, then
// notifies the sales queue. The queue publish is best-effort: the lead
// is already stored, so a broker outage must not fail the request.
type CaptureContactUseCase struct {
	Contacts entity.ContactRepositoryInterface
	Queue    QueueProducerInterface
}

func NewCaptureContactUseCase(contacts entity.ContactRepositoryInterface, producer QueueProducerInterface) *CaptureContactUseCase {
	return &CaptureContactUseCase{
		Contacts: contacts,
		Queue:    producer,
	}
}

func (uc *CaptureContactUseCase) Execute(ctx context.Context, input CaptureContactInput) (*entity.Contact, error) {
	if errs := ValidateCaptureContactInput(input); len(errs) > 0 {
		return nil, NewDomainError("VALIDATION", errs[0].Error())
	}

	contact, err := entity.NewContact(
		strings.TrimSpace(input.Name),
		strings.TrimSpace(input.Email),
		strings.TrimSpace(input.Company),
		strings.TrimSpace(input.Phone),
		strings.TrimSpace(input.SiyamRef),
	)
	if err != nil {
		return nil, NewDomainError("VALIDATION", err.Error())
	}

	if err := uc.Contacts.Create(ctx, contact); err != nil {
		return nil, NewTechnicalError("DB_ERROR", err.Error())
	}

	if uc.Queue != nil {
		payload := queue.LeadCapturedPayload{
			ContactID: contact.ID,
			Name:      contact.Name,
			Email:     contact.Email,
			Company:   contact.Company,
			Phone:     contact.Phone,
			SiyamRef:  contact.SiyamRef,
		}
		if err := uc.Queue.PublishLeadCaptured(ctx, payload); err != nil {
			log.Printf("lead %s stored but notification publish failed: %v", contact.ID, err)
		}
	}

	return contact, nil
}
