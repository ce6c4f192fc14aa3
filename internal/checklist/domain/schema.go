package domain

import (
	"fmt"
	"strings"
	"time"
)

// Wire names of the stored documents. Internal field names never leak into
// the document layout; every mapping goes through the tables below.
const (
	FieldJurisdictionName = "jurisdictionName"
	FieldAgencyName       = "agencyName"
	FieldAgencyWebsite    = "agencyWebsite"
	FieldChecklistItems   = "checklistItems"

	FieldItemID          = "id"
	FieldItemTitle       = "title"
	FieldItemDescription = "description"
	FieldItemCategory    = "category"
	FieldItemStatus      = "status"

	FieldBlueprintID = "blueprintId"
	FieldGeneratedAt = "generatedAt"
	FieldItems       = "items"
)

type stringField[T any] struct {
	wire     string
	nonEmpty bool
	ref      func(*T) *string
}

var blueprintFields = []stringField[PermitBlueprint]{
	{FieldJurisdictionName, true, func(b *PermitBlueprint) *string { return &b.JurisdictionName }},
	{FieldAgencyName, true, func(b *PermitBlueprint) *string { return &b.AgencyName }},
	{FieldAgencyWebsite, true, func(b *PermitBlueprint) *string { return &b.AgencyWebsite }},
}

var templateFields = []stringField[ChecklistItemTemplate]{
	{FieldItemID, true, func(t *ChecklistItemTemplate) *string { return &t.ID }},
	{FieldItemTitle, false, func(t *ChecklistItemTemplate) *string { return &t.Title }},
	{FieldItemDescription, false, func(t *ChecklistItemTemplate) *string { return &t.Description }},
	{FieldItemCategory, false, func(t *ChecklistItemTemplate) *string { return &t.Category }},
}

// ParseBlueprint validates untyped document data and builds a PermitBlueprint.
// It never returns a partially populated blueprint.
func ParseBlueprint(data map[string]interface{}) (*PermitBlueprint, error) {
	if data == nil {
		return nil, &ValidationError{Field: "", Reason: "document is empty"}
	}

	var bp PermitBlueprint
	if err := readStrings(data, "", blueprintFields, &bp); err != nil {
		return nil, err
	}

	raw, ok := data[FieldChecklistItems]
	if !ok || raw == nil {
		return nil, &ValidationError{Field: FieldChecklistItems, Reason: "required"}
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil, &ValidationError{Field: FieldChecklistItems, Reason: "must be a list"}
	}

	items := make([]ChecklistItemTemplate, 0, len(list))
	seen := make(map[string]int, len(list))
	for i, entry := range list {
		path := fmt.Sprintf("%s[%d]", FieldChecklistItems, i)
		m, ok := entry.(map[string]interface{})
		if !ok {
			return nil, &ValidationError{Field: path, Reason: "must be an object"}
		}

		var item ChecklistItemTemplate
		if err := readStrings(m, path+".", templateFields, &item); err != nil {
			return nil, err
		}
		if prev, dup := seen[item.ID]; dup {
			return nil, &ValidationError{
				Field:  path + "." + FieldItemID,
				Reason: fmt.Sprintf("duplicate of %s[%d]", FieldChecklistItems, prev),
			}
		}
		seen[item.ID] = i
		items = append(items, item)
	}
	bp.ChecklistItems = items

	return &bp, nil
}

func readStrings[T any](data map[string]interface{}, prefix string, fields []stringField[T], dst *T) error {
	for _, f := range fields {
		raw, ok := data[f.wire]
		if !ok || raw == nil {
			return &ValidationError{Field: prefix + f.wire, Reason: "required"}
		}
		s, ok := raw.(string)
		if !ok {
			return &ValidationError{Field: prefix + f.wire, Reason: fmt.Sprintf("must be a string, got %T", raw)}
		}
		if f.nonEmpty && strings.TrimSpace(s) == "" {
			return &ValidationError{Field: prefix + f.wire, Reason: "must not be empty"}
		}
		*f.ref(dst) = s
	}
	return nil
}

// BlueprintDocument is the inverse of ParseBlueprint.
func BlueprintDocument(bp *PermitBlueprint) map[string]interface{} {
	doc := make(map[string]interface{}, len(blueprintFields)+1)
	for _, f := range blueprintFields {
		doc[f.wire] = *f.ref(bp)
	}
	items := make([]interface{}, 0, len(bp.ChecklistItems))
	for i := range bp.ChecklistItems {
		items = append(items, templateDocument(&bp.ChecklistItems[i]))
	}
	doc[FieldChecklistItems] = items
	return doc
}

func templateDocument(t *ChecklistItemTemplate) map[string]interface{} {
	m := make(map[string]interface{}, len(templateFields)+1)
	for _, f := range templateFields {
		m[f.wire] = *f.ref(t)
	}
	return m
}

// ChecklistDocument maps a ProjectChecklist to its stored layout. The
// checklist id is the document key and is not part of the body.
func ChecklistDocument(c *ProjectChecklist) map[string]interface{} {
	items := make([]interface{}, 0, len(c.Items))
	for i := range c.Items {
		m := templateDocument(&c.Items[i].ChecklistItemTemplate)
		m[FieldItemStatus] = c.Items[i].Status
		items = append(items, m)
	}
	return map[string]interface{}{
		FieldBlueprintID: c.BlueprintID,
		FieldGeneratedAt: c.GeneratedAt.UTC(),
		FieldItems:       items,
	}
}

// ParseChecklist reads a stored checklist document. generatedAt may be a
// native timestamp or an RFC 3339 string, depending on the store.
func ParseChecklist(id string, data map[string]interface{}) (*ProjectChecklist, error) {
	if data == nil {
		return nil, &ValidationError{Field: "", Reason: "document is empty"}
	}
	c := ProjectChecklist{ID: id}

	bid, ok := data[FieldBlueprintID].(string)
	if !ok || bid == "" {
		return nil, &ValidationError{Field: FieldBlueprintID, Reason: "required"}
	}
	c.BlueprintID = bid

	switch v := data[FieldGeneratedAt].(type) {
	case time.Time:
		c.GeneratedAt = v.UTC()
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return nil, &ValidationError{Field: FieldGeneratedAt, Reason: "must be an RFC 3339 timestamp"}
		}
		c.GeneratedAt = t.UTC()
	default:
		return nil, &ValidationError{Field: FieldGeneratedAt, Reason: "required"}
	}

	list, ok := data[FieldItems].([]interface{})
	if !ok {
		return nil, &ValidationError{Field: FieldItems, Reason: "must be a list"}
	}
	c.Items = make([]ChecklistItem, 0, len(list))
	for i, entry := range list {
		path := fmt.Sprintf("%s[%d]", FieldItems, i)
		m, ok := entry.(map[string]interface{})
		if !ok {
			return nil, &ValidationError{Field: path, Reason: "must be an object"}
		}
		var item ChecklistItem
		if err := readStrings(m, path+".", templateFields, &item.ChecklistItemTemplate); err != nil {
			return nil, err
		}
		status, ok := m[FieldItemStatus].(string)
		if !ok || status == "" {
			return nil, &ValidationError{Field: path + "." + FieldItemStatus, Reason: "required"}
		}
		item.Status = status
		c.Items = append(c.Items, item)
	}
	return &c, nil
}

// ValidateRequest checks the inbound generate request.
func ValidateRequest(req GenerateRequest) error {
	if strings.TrimSpace(req.ProjectID) == "" || strings.TrimSpace(req.ProjectAddress) == "" {
		return ErrMissingFields
	}
	if strings.Contains(req.ProjectID, "/") || req.ProjectID == "." || req.ProjectID == ".." {
		return ErrInvalidProjectID
	}
	return nil
}
