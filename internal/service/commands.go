package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-bangs/internal/adapter"
	"github.com/MKhiriev/go-bangs/internal/bang"
	"github.com/MKhiriev/go-bangs/internal/logger"
	"github.com/MKhiriev/go-bangs/internal/session"
	"github.com/MKhiriev/go-bangs/internal/store"
	"github.com/MKhiriev/go-bangs/internal/validators"
	"github.com/MKhiriev/go-bangs/models"
)

const (
	maxTitleLength = 255

	hideFlag = "--hide"

	// FetchingTitlePlaceholder names a new bang until its page title arrives.
	FetchingTitlePlaceholder = "Fetching title..."
)

const (
	msgInvalidURL          = "Invalid or missing URL"
	msgTitleTooLong        = "Title must be 255 characters or less"
	msgHiddenNeedsPassword = "You must set a global password in settings before hiding items"
	msgInvalidAddSyntax    = "Invalid trigger or empty URL"
	msgEditUsage           = "Usage: !edit !trigger [!newTrigger] [newUrl]"
	msgDeleteUsage         = "Usage: !del !trigger"
	msgContentRequired     = "Content is required"
	msgReminderContent     = "Reminder content is required"
	msgDescriptionRequired = "Description is required"
	msgTabGroupURL         = "Tab groups have no single URL to change"
)

type commandHandler struct {
	bangs     store.BangRepository
	tabs      store.TabGroupRepository
	bookmarks store.BookmarkRepository
	notes     store.NoteRepository
	reminders store.ReminderRepository

	cache  *TriggerCache
	titles adapter.TitleFetcher
	runner TaskRunner
	now    func() time.Time
	logger *logger.Logger
}

// NewCommandHandler builds the handler of the reserved system commands.
func NewCommandHandler(
	storages *store.Storages,
	cache *TriggerCache,
	titles adapter.TitleFetcher,
	runner TaskRunner,
	log *logger.Logger,
) CommandHandler {
	return &commandHandler{
		bangs:     storages.BangRepository,
		tabs:      storages.TabGroupRepository,
		bookmarks: storages.BookmarkRepository,
		notes:     storages.NoteRepository,
		reminders: storages.ReminderRepository,
		cache:     cache,
		titles:    titles,
		runner:    runner,
		now:       time.Now,
		logger:    log,
	}
}

// Handle implements CommandHandler. Rejected commands return a
// *ValidationError.
func (h *commandHandler) Handle(ctx context.Context, sess *session.Session, user *models.User, query models.ParsedQuery) (models.Resolution, error) {
	switch query.System {
	case models.SystemCommandBookmark:
		return h.bookmark(ctx, user, query.Remainder)
	case models.SystemCommandAdd:
		return h.add(ctx, sess, user, query.Remainder)
	case models.SystemCommandEdit:
		return h.edit(ctx, sess, user, query.Remainder)
	case models.SystemCommandDelete:
		return h.delete(ctx, sess, user, query.Remainder)
	case models.SystemCommandNote:
		return h.note(ctx, user, query.Remainder)
	case models.SystemCommandRemind:
		return h.remind(ctx, user, query.Remainder)
	}
	return models.Resolution{}, fmt.Errorf("unknown system command %q", query.Trigger)
}

// ── !bm ──────────────────────────────────────────────────────────────────────

// bookmark redirects to the URL at once and stores the bookmark in the
// background.
func (h *commandHandler) bookmark(ctx context.Context, user *models.User, remainder string) (models.Resolution, error) {
	rest, hide := stripFlag(remainder, hideFlag)
	pageURL, title := bang.ExtractURL(rest)

	if !validators.IsValidURL(pageURL) {
		return models.Resolution{}, validationErrorf(msgInvalidURL)
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return models.Resolution{}, validationErrorf(msgTitleTooLong)
	}
	if hide && !user.CanHideItems() {
		return models.Resolution{}, validationErrorf(msgHiddenNeedsPassword)
	}

	existing, err := h.bookmarks.FindBookmarksByURL(ctx, user.UserID, pageURL)
	if err != nil {
		return models.Resolution{}, fmt.Errorf("error checking duplicate bookmark: %w", err)
	}
	for _, b := range existing {
		if b.SameTitle(title) {
			return models.Resolution{}, validationErrorf("Bookmark already exists with title %q", b.Title)
		}
	}

	bookmark := models.Bookmark{UserID: user.UserID, URL: pageURL, Title: title, Hidden: hide}
	h.runner.Go("create_bookmark", func(ctx context.Context) error {
		if bookmark.Title == "" {
			if fetched, err := h.titles.FetchTitle(ctx, bookmark.URL); err == nil {
				bookmark.Title = fetched
			} else {
				logger.FromContext(ctx).Debug().Err(err).Str("url", bookmark.URL).Msg("bookmark saved without title")
			}
		}
		_, err := h.bookmarks.CreateBookmark(ctx, bookmark)
		return err
	})

	return models.Redirect(pageURL, models.CacheNoStore, models.OutcomeCommand), nil
}

// ── !add ─────────────────────────────────────────────────────────────────────

func (h *commandHandler) add(ctx context.Context, sess *session.Session, user *models.User, remainder string) (models.Resolution, error) {
	rest, hide := stripFlag(remainder, hideFlag)
	first, rest := splitFirst(rest)

	trigger := ""
	if !bang.IsHTTPURLToken(first) {
		trigger = bang.NormalizeTrigger(first)
	} else {
		rest = remainder
	}
	pageURL, name := bang.ExtractURL(rest)

	if trigger == "" || pageURL == "" {
		return models.Resolution{}, validationErrorf(msgInvalidAddSyntax)
	}
	if err := checkNewTrigger(trigger); err != nil {
		return models.Resolution{}, err
	}
	if !validators.IsValidURL(pageURL) {
		return models.Resolution{}, validationErrorf(msgInvalidURL)
	}
	if err := h.ensureTriggerFree(ctx, user.UserID, trigger); err != nil {
		return models.Resolution{}, err
	}
	if hide && !user.CanHideItems() {
		return models.Resolution{}, validationErrorf(msgHiddenNeedsPassword)
	}

	fetchTitle := name == ""
	if fetchTitle {
		name = FetchingTitlePlaceholder
	}

	created, err := h.bangs.CreateBang(ctx, models.Bang{
		UserID:      user.UserID,
		Trigger:     trigger,
		Name:        name,
		Kind:        models.BangKindRedirect,
		URLTemplate: pageURL,
		Hidden:      hide,
	})
	if errors.Is(err, store.ErrTriggerAlreadyExists) {
		return models.Resolution{}, validationErrorf("%s already exists", trigger)
	}
	if err != nil {
		return models.Resolution{}, fmt.Errorf("error creating bang %s: %w", trigger, err)
	}

	h.cache.Invalidate(sess)

	if fetchTitle {
		h.refreshBangName(user.UserID, created.Trigger, pageURL)
	}

	return models.Acknowledge(fmt.Sprintf("Bang %s added", created.Trigger)), nil
}

// ── !del ─────────────────────────────────────────────────────────────────────

func (h *commandHandler) delete(ctx context.Context, sess *session.Session, user *models.User, remainder string) (models.Resolution, error) {
	first, _ := splitFirst(remainder)
	trigger := bang.NormalizeTrigger(first)
	if trigger == "" {
		return models.Resolution{}, validationErrorf(msgDeleteUsage)
	}

	err := h.bangs.DeleteBang(ctx, user.UserID, trigger)
	if errors.Is(err, store.ErrBangNotFound) {
		err = h.tabs.DeleteTabGroup(ctx, user.UserID, trigger)
		if errors.Is(err, store.ErrTabGroupNotFound) {
			return models.Resolution{}, validationErrorf("%s not found or you don't have permission to delete it", trigger)
		}
	}
	if err != nil {
		return models.Resolution{}, fmt.Errorf("error deleting %s: %w", trigger, err)
	}

	h.cache.Invalidate(sess)

	return models.Acknowledge(fmt.Sprintf("%s deleted", trigger)), nil
}

// ── !edit ────────────────────────────────────────────────────────────────────

type editArgs struct {
	trigger    string
	newTrigger string
	newURL     string
}

// parseEdit reads "[!]trigger [[!]newTrigger] [newUrl]". The optional
// arguments may come in either order.
func parseEdit(remainder string) (editArgs, bool) {
	tokens := strings.Fields(remainder)
	if len(tokens) < 2 || len(tokens) > 3 {
		return editArgs{}, false
	}

	args := editArgs{trigger: bang.NormalizeTrigger(tokens[0])}
	if args.trigger == "" {
		return editArgs{}, false
	}

	for _, tok := range tokens[1:] {
		if bang.IsHTTPURLToken(tok) {
			if args.newURL != "" {
				return editArgs{}, false
			}
			args.newURL = tok
			continue
		}
		if args.newTrigger != "" {
			return editArgs{}, false
		}
		args.newTrigger = bang.NormalizeTrigger(tok)
		if args.newTrigger == "" {
			return editArgs{}, false
		}
	}

	if args.newTrigger == args.trigger {
		args.newTrigger = ""
	}

	return args, args.newTrigger != "" || args.newURL != ""
}

func (h *commandHandler) edit(ctx context.Context, sess *session.Session, user *models.User, remainder string) (models.Resolution, error) {
	args, ok := parseEdit(remainder)
	if !ok {
		return models.Resolution{}, validationErrorf(msgEditUsage)
	}

	if args.newTrigger != "" {
		if err := checkNewTrigger(args.newTrigger); err != nil {
			return models.Resolution{}, err
		}
		if err := h.ensureTriggerFree(ctx, user.UserID, args.newTrigger); err != nil {
			return models.Resolution{}, err
		}
	}
	if args.newURL != "" && !validators.IsValidURL(args.newURL) {
		return models.Resolution{}, validationErrorf(msgInvalidURL)
	}

	_, err := h.bangs.FindBang(ctx, user.UserID, args.trigger)
	switch {
	case err == nil:
		err = h.editBang(ctx, user, args)
	case errors.Is(err, store.ErrBangNotFound):
		err = h.editTabGroup(ctx, user, args)
	default:
		err = fmt.Errorf("error loading bang %s: %w", args.trigger, err)
	}
	if err != nil {
		return models.Resolution{}, err
	}

	h.cache.Invalidate(sess)

	return models.Acknowledge(fmt.Sprintf("%s updated", args.trigger)), nil
}

func (h *commandHandler) editBang(ctx context.Context, user *models.User, args editArgs) error {
	update := models.BangUpdate{UserID: user.UserID, Trigger: args.trigger}
	if args.newTrigger != "" {
		update.NewTrigger = &args.newTrigger
	}
	if args.newURL != "" {
		update.NewURL = &args.newURL
	}

	err := h.bangs.UpdateBang(ctx, update)
	switch {
	case errors.Is(err, store.ErrTriggerAlreadyExists):
		return validationErrorf("%s already exists", args.newTrigger)
	case errors.Is(err, store.ErrBangNotFound):
		return validationErrorf("%s not found or you don't have permission to edit it", args.trigger)
	case err != nil:
		return fmt.Errorf("error updating bang %s: %w", args.trigger, err)
	}

	if args.newURL != "" {
		trigger := args.trigger
		if args.newTrigger != "" {
			trigger = args.newTrigger
		}
		h.refreshBangName(user.UserID, trigger, args.newURL)
	}
	return nil
}

func (h *commandHandler) editTabGroup(ctx context.Context, user *models.User, args editArgs) error {
	_, err := h.tabs.FindTabGroup(ctx, user.UserID, args.trigger)
	if errors.Is(err, store.ErrTabGroupNotFound) {
		return validationErrorf("%s not found or you don't have permission to edit it", args.trigger)
	}
	if err != nil {
		return fmt.Errorf("error loading tab group %s: %w", args.trigger, err)
	}

	if args.newURL != "" {
		return validationErrorf(msgTabGroupURL)
	}

	err = h.tabs.RenameTabGroupTrigger(ctx, user.UserID, args.trigger, args.newTrigger)
	if errors.Is(err, store.ErrTriggerAlreadyExists) {
		return validationErrorf("%s already exists", args.newTrigger)
	}
	if err != nil {
		return fmt.Errorf("error renaming tab group %s: %w", args.trigger, err)
	}
	return nil
}

// ── !note ────────────────────────────────────────────────────────────────────

// parseNote splits "title | content". Only the first "|" separates, and a
// missing title becomes "Untitled".
func parseNote(remainder string) (string, string) {
	title, content, found := strings.Cut(remainder, "|")
	if !found {
		return models.DefaultNoteTitle, strings.TrimSpace(remainder)
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = models.DefaultNoteTitle
	}
	return title, strings.TrimSpace(content)
}

func (h *commandHandler) note(ctx context.Context, user *models.User, remainder string) (models.Resolution, error) {
	rest, hide := stripFlag(remainder, hideFlag)
	title, content := parseNote(rest)

	if utf8.RuneCountInString(title) > maxTitleLength {
		return models.Resolution{}, validationErrorf(msgTitleTooLong)
	}
	if content == "" {
		return models.Resolution{}, validationErrorf(msgContentRequired)
	}
	if hide && !user.CanHideItems() {
		return models.Resolution{}, validationErrorf(msgHiddenNeedsPassword)
	}

	note, err := h.notes.CreateNote(ctx, models.Note{
		UserID:  user.UserID,
		Title:   title,
		Content: content,
		Hidden:  hide,
		Pinned:  false,
	})
	if err != nil {
		return models.Resolution{}, fmt.Errorf("error creating note: %w", err)
	}

	return models.Acknowledge(fmt.Sprintf("Note %q saved", note.Title)), nil
}

// ── !remind ──────────────────────────────────────────────────────────────────

type remindArgs struct {
	frequency   models.Frequency
	description string
	content     string
	urlOnly     bool
}

// parseRemind accepts
//
//	[freq] | description | [content]
//	[freq] description... content
//	[freq] url
//
// where content in the space form is a trailing URL or calendar date.
func parseRemind(remainder string) (remindArgs, error) {
	var args remindArgs

	rest := strings.TrimSpace(remainder)
	if first, after := splitFirst(rest); first != "" {
		if freq, ok := models.ParseFrequency(first); ok {
			args.frequency = freq
			rest = after
		}
	}

	if strings.Contains(rest, "|") {
		rest = strings.TrimPrefix(strings.TrimSpace(rest), "|")
		description, content, _ := strings.Cut(rest, "|")
		args.description = strings.TrimSpace(description)
		args.content = strings.TrimSpace(content)

		if args.description == "" {
			return remindArgs{}, validationErrorf(msgDescriptionRequired)
		}
		if args.content == "" {
			return remindArgs{}, validationErrorf(msgReminderContent)
		}
		return args, nil
	}

	tokens := strings.Fields(rest)
	if len(tokens) == 0 {
		return remindArgs{}, validationErrorf(msgReminderContent)
	}

	last := tokens[len(tokens)-1]
	if !bang.IsHTTPURLToken(last) && !looksLikeDate(last) {
		return remindArgs{}, validationErrorf(msgReminderContent)
	}

	args.content = last
	args.description = strings.Join(tokens[:len(tokens)-1], " ")
	if args.description == "" {
		args.description = models.DefaultNoteTitle
		args.urlOnly = bang.IsHTTPURLToken(last)
	}
	return args, nil
}

func looksLikeDate(token string) bool {
	_, ok := bang.ParseCalendarDate(token, bang.DefaultReminderTime, "")
	return ok
}

func (h *commandHandler) remind(ctx context.Context, user *models.User, remainder string) (models.Resolution, error) {
	args, err := parseRemind(remainder)
	if err != nil {
		return models.Resolution{}, err
	}
	if utf8.RuneCountInString(args.description) > maxTitleLength {
		return models.Resolution{}, validationErrorf(msgTitleTooLong)
	}

	timeOfDay := user.ReminderPreferences.Time
	if timeOfDay == "" {
		timeOfDay = bang.DefaultReminderTime
	}

	reminder := models.Reminder{
		UserID:  user.UserID,
		Title:   args.description,
		Content: args.content,
	}

	date, isDate := bang.ParseCalendarDate(args.content, timeOfDay, user.Timezone)
	if args.frequency == "" && isDate {
		reminder.Type = models.ReminderOnce
		reminder.DueAt = date
	} else {
		frequency := args.frequency
		if frequency == "" {
			frequency = user.ReminderPreferences.Frequency
		}
		if frequency == "" {
			frequency = models.FrequencyDaily
		}

		timing := bang.ParseReminderTiming(string(frequency), timeOfDay, user.Timezone, h.now())
		if !timing.IsValid {
			timing = bang.ParseReminderTiming(string(models.FrequencyDaily), timeOfDay, user.Timezone, h.now())
		}
		reminder.Type = timing.Type
		reminder.Frequency = timing.Frequency
		reminder.DueAt = timing.NextDue
	}

	created, err := h.reminders.CreateReminder(ctx, reminder)
	if err != nil {
		return models.Resolution{}, fmt.Errorf("error creating reminder: %w", err)
	}

	if args.urlOnly {
		reminderID, pageURL := created.ID, args.content
		h.runner.Go("fetch_reminder_title", func(ctx context.Context) error {
			title, err := h.titles.FetchTitle(ctx, pageURL)
			if err != nil {
				return err
			}
			return h.reminders.UpdateReminderTitle(ctx, reminderID, title)
		})
	}

	loc := bang.LoadLocation(user.Timezone)
	return models.Acknowledge(fmt.Sprintf("Reminder %q set for %s",
		created.Title, created.DueAt.In(loc).Format("Mon, 02 Jan 2006 15:04 MST"))), nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

// ensureTriggerFree rejects a trigger already used by one of the user's bangs
// or tab groups.
// checkNewTrigger rejects reserved names and triggers the query parser could
// never match.
func checkNewTrigger(trigger string) error {
	if bang.IsReservedTrigger(trigger) {
		return validationErrorf("%s is a bang's systems command", trigger)
	}
	name := strings.TrimPrefix(trigger, bang.TriggerPrefix)
	if !validators.IsOnlyLettersAndNumbers(name) || !bang.IsBangTrigger(trigger) {
		return validationErrorf("%s must contain only letters and numbers", trigger)
	}
	return nil
}

func (h *commandHandler) ensureTriggerFree(ctx context.Context, userID int64, trigger string) error {
	_, err := h.bangs.FindBang(ctx, userID, trigger)
	if err == nil {
		return validationErrorf("%s already exists", trigger)
	}
	if !errors.Is(err, store.ErrBangNotFound) {
		return fmt.Errorf("error checking trigger %s: %w", trigger, err)
	}

	_, err = h.tabs.FindTabGroup(ctx, userID, trigger)
	if err == nil {
		return validationErrorf("%s already exists", trigger)
	}
	if !errors.Is(err, store.ErrTabGroupNotFound) {
		return fmt.Errorf("error checking trigger %s: %w", trigger, err)
	}
	return nil
}

func (h *commandHandler) refreshBangName(userID int64, trigger, pageURL string) {
	h.runner.Go("fetch_bang_title", func(ctx context.Context) error {
		title, err := h.titles.FetchTitle(ctx, pageURL)
		if err != nil {
			return err
		}
		return h.bangs.UpdateBangName(ctx, userID, trigger, title)
	})
}

// stripFlag removes every standalone occurrence of flag from s together with
// one whitespace character next to it. All other spacing, line breaks
// included, is kept.
func stripFlag(s, flag string) (string, bool) {
	found := false
	for start := 0; start < len(s); {
		idx := strings.Index(s[start:], flag)
		if idx < 0 {
			break
		}
		idx += start
		end := idx + len(flag)
		if !spaceBefore(s, idx) || !spaceAfter(s, end) {
			start = idx + 1
			continue
		}

		found = true
		if r, size := utf8.DecodeLastRuneInString(s[:idx]); size > 0 && unicode.IsSpace(r) {
			idx -= size
		} else if r, size := utf8.DecodeRuneInString(s[end:]); size > 0 && unicode.IsSpace(r) {
			end += size
		}
		s = s[:idx] + s[end:]
		start = idx
	}
	return strings.TrimSpace(s), found
}

func spaceBefore(s string, i int) bool {
	r, size := utf8.DecodeLastRuneInString(s[:i])
	return size == 0 || unicode.IsSpace(r)
}

func spaceAfter(s string, i int) bool {
	r, size := utf8.DecodeRuneInString(s[i:])
	return size == 0 || unicode.IsSpace(r)
}

func splitFirst(s string) (string, string) {
	s = strings.TrimSpace(s)
	idx := strings.IndexFunc(s, func(r rune) bool { return r == ' ' || r == '\t' || r == '\n' || r == '\r' })
	if idx < 0 {
		return s, ""
	}
	return s[:idx], strings.TrimSpace(s[idx:])
}
