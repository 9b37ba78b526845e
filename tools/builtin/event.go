package builtin

import (
	"context"
	"fmt"

	"github.com/Huzaifa-EJ/business-analyst-adk/crm"
	"github.com/Huzaifa-EJ/business-analyst-adk/tools"
)

type CreateEventTool struct {
	svc *crm.Service
}

func NewCreateEventTool(svc *crm.Service) *CreateEventTool {
	return &CreateEventTool{svc: svc}
}

func (t *CreateEventTool) Name() string { return "create_event" }

func (t *CreateEventTool) Description() string {
	return "Schedules an event, optionally linked to a contact."
}

func (t *CreateEventTool) ParameterSchema() string {
	return objectSchema(map[string]any{
		"title":       strProp("Event title."),
		"contact_id":  intProp("Optional contact this event is with (0 or absent for none)."),
		"date":        strProp("Event date and time (YYYY-MM-DD HH:MM:SS); defaults to now."),
		"description": strProp("Event description."),
		"location":    strProp("Event location."),
	}, "title")
}

func (t *CreateEventTool) Execute(ctx context.Context, sess tools.Session, params map[string]any) tools.Envelope {
	const action = "create_event"
	title := stringParam(params, "title")
	if title == "" {
		return tools.Errorf(action, "title is required")
	}
	in := crm.EventInput{
		Title:       title,
		Date:        stringParam(params, "date"),
		Description: stringParam(params, "description"),
		Location:    stringParam(params, "location"),
	}
	if id, ok := int64Param(params, "contact_id"); ok && id > 0 {
		in.ContactID = &id
	}
	detail, err := t.svc.CreateEvent(ctx, sess.AccountID, in)
	if err != nil {
		return tools.FromError(action, "Failed to create event: "+title, err)
	}
	return tools.Success(action, "Successfully created event: "+detail.Title, map[string]any{
		"event_id":     detail.ID,
		"title":        detail.Title,
		"date":         detail.Date,
		"contact_id":   detail.ContactID,
		"contact_name": detail.ContactName,
		"location":     detail.Location,
		"description":  detail.Description,
	})
}

type ListUpcomingEventsTool struct {
	svc *crm.Service
}

func NewListUpcomingEventsTool(svc *crm.Service) *ListUpcomingEventsTool {
	return &ListUpcomingEventsTool{svc: svc}
}

func (t *ListUpcomingEventsTool) Name() string { return "list_upcoming_events" }

func (t *ListUpcomingEventsTool) Description() string {
	return "Lists events from now onward, soonest first."
}

func (t *ListUpcomingEventsTool) ParameterSchema() string {
	return objectSchema(map[string]any{})
}

func (t *ListUpcomingEventsTool) Execute(ctx context.Context, sess tools.Session, _ map[string]any) tools.Envelope {
	const action = "list_upcoming_events"
	events, err := t.svc.UpcomingEvents(ctx, sess.AccountID)
	if err != nil {
		return tools.FromError(action, "Failed to retrieve upcoming events", err)
	}
	return tools.Success(action, fmt.Sprintf("Found %d upcoming events", len(events)), map[string]any{
		"events_count": len(events),
		"events":       events,
	})
}
