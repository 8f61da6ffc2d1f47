package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/CrestNiraj12/speakfeed/app"
	"github.com/CrestNiraj12/speakfeed/render"
)

// templatesFile is the on-disk layout. Pointers tell an omitted key
// (keep the default) from an explicit empty string.
type templatesFile struct {
	Templates fileTemplates `yaml:"templates,omitempty"`
	Format    *fileFormat   `yaml:"format,omitempty"`
}

type fileTemplates struct {
	Post          *string `yaml:"post,omitempty"`
	Repost        *string `yaml:"repost,omitempty"`
	Quote         *string `yaml:"quote,omitempty"`
	Copy          *string `yaml:"copy,omitempty"`
	DirectMessage *string `yaml:"direct_message,omitempty"`
	User          *string `yaml:"user,omitempty"`
	UserSummary   *string `yaml:"user_summary,omitempty"`
	Notification  *string `yaml:"notification,omitempty"`
}

type fileFormat struct {
	Time        *string `yaml:"time,omitempty"`
	Relative    *bool   `yaml:"relative,omitempty"`
	YesWord     *string `yaml:"yes_word,omitempty"`
	NoWord      *string `yaml:"no_word,omitempty"`
	GroupDigits *bool   `yaml:"group_digits,omitempty"`
	Locale      *string `yaml:"locale,omitempty"`
	Timezone    *string `yaml:"timezone,omitempty"`
}

func (ft *fileTemplates) slots() map[render.Slot]**string {
	return map[render.Slot]**string{
		render.SlotPost:          &ft.Post,
		render.SlotRepost:        &ft.Repost,
		render.SlotQuote:         &ft.Quote,
		render.SlotCopy:          &ft.Copy,
		render.SlotDirectMessage: &ft.DirectMessage,
		render.SlotUser:          &ft.User,
		render.SlotUserSummary:   &ft.UserSummary,
		render.SlotNotification:  &ft.Notification,
	}
}

// DefaultSnapshot returns the built-in templates and format.
func DefaultSnapshot() app.Snapshot {
	return app.Snapshot{
		Templates: render.DefaultSet(),
		Format:    render.DefaultFormat(),
	}
}

// LoadTemplates reads a templates file. A missing file yields the
// defaults; keys absent from the file keep their default values.
func LoadTemplates(path string) (app.Snapshot, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultSnapshot(), nil
	}
	if err != nil {
		return app.Snapshot{}, fmt.Errorf("reading templates: %w", err)
	}
	return ParseTemplates(data)
}

// ParseTemplates decodes templates file content over the defaults.
func ParseTemplates(data []byte) (app.Snapshot, error) {
	var f templatesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return app.Snapshot{}, fmt.Errorf("parsing templates: %w", err)
	}

	snap := DefaultSnapshot()
	for slot, p := range f.Templates.slots() {
		if *p != nil {
			snap.Templates = snap.Templates.With(slot, **p)
		}
	}

	if f.Format == nil {
		return snap, nil
	}
	ff := f.Format
	if ff.Time != nil && *ff.Time != "" {
		snap.Format.TimeLayout = *ff.Time
	}
	if ff.Relative != nil {
		snap.Format.Relative = *ff.Relative
	}
	if ff.YesWord != nil {
		snap.Format.Yes = *ff.YesWord
	}
	if ff.NoWord != nil {
		snap.Format.No = *ff.NoWord
	}
	if ff.GroupDigits != nil {
		snap.Format.GroupDigits = *ff.GroupDigits
	}
	if ff.Locale != nil && *ff.Locale != "" {
		tag, err := language.Parse(*ff.Locale)
		if err != nil {
			return app.Snapshot{}, fmt.Errorf("invalid format.locale %q: %w", *ff.Locale, err)
		}
		snap.Format.Locale = tag
	}
	if ff.Timezone != nil && *ff.Timezone != "" {
		loc, err := time.LoadLocation(*ff.Timezone)
		if err != nil {
			return app.Snapshot{}, fmt.Errorf("invalid format.timezone %q: %w", *ff.Timezone, err)
		}
		snap.Format.Location = loc
	}
	return snap, nil
}

// MarshalTemplates encodes the given slots of s in the templates file
// layout, ready to paste into the file. Other slots are left out.
func MarshalTemplates(s render.Set, slots []render.Slot) ([]byte, error) {
	var f templatesFile
	fields := f.Templates.slots()
	for _, slot := range slots {
		p, ok := fields[slot]
		if !ok {
			continue
		}
		v := s.Get(slot)
		*p = &v
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encoding templates: %w", err)
	}
	return data, nil
}
