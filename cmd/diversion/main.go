// Command diversion is a terminal front end for the Diversion API: it
// wraps the SDK's service groups and flows behind flag-driven commands.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	diversion "github.com/diversion-social/diversion-go"
	"github.com/diversion-social/diversion-go/display"
	"github.com/diversion-social/diversion-go/domain"
	"github.com/diversion-social/diversion-go/flow"
	"github.com/diversion-social/diversion-go/rest"
	"github.com/diversion-social/diversion-go/session"
)

// Default server base URL; override with DIVERSION_SERVER or --server.
var serverBaseURL = "http://localhost:5173"

func main() {
	cmd := flag.String("cmd", "", "Command: register|login|logout|profile|interests|select|events|event|rsvp|cancel|friends|search|add-friend|remove-friend|feed")
	serverFlag := flag.String("server", "", "Override server base URL (e.g. https://diversion.example.com)")
	username := flag.String("user", "", "Username (register/login)")
	password := flag.String("pass", "", "Password (register/login)")
	email := flag.String("email", "", "Email (register)")
	id := flag.Int("id", 0, "Resource ID (profile/event/rsvp/add-friend/remove-friend)")
	subs := flag.String("subs", "", "Comma-separated sub-interest IDs (select)")
	status := flag.String("status", string(domain.RSVPGoing), "RSVP status: Going|Maybe|Not Going")
	query := flag.String("query", "", "Search query (search, interests)")
	verbose := flag.Bool("v", false, "Verbose request logging")
	flag.Parse()

	if env := os.Getenv("DIVERSION_SERVER"); env != "" {
		serverBaseURL = strings.TrimRight(env, "/")
	}
	if *serverFlag != "" {
		serverBaseURL = strings.TrimRight(*serverFlag, "/")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	client, err := diversion.New(serverBaseURL, rest.WithLogger(logger))
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	app := &app{
		client:   client,
		sessions: session.NewFileStore(sessionPath()),
	}

	ctx := context.Background()
	if err := app.run(ctx, *cmd, args{
		username: *username,
		password: *password,
		email:    *email,
		id:       *id,
		subs:     *subs,
		status:   domain.RSVPStatus(*status),
		query:    *query,
	}); err != nil {
		fmt.Println("Error:", rest.Message(err, err.Error()))
		os.Exit(1)
	}
}

// sessionPath places the session marker under the user config dir.
func sessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "diversion", "session.json")
}

type args struct {
	username string
	password string
	email    string
	id       int
	subs     string
	status   domain.RSVPStatus
	query    string
}

type app struct {
	client   *diversion.Client
	sessions session.Store
}

func (a *app) run(ctx context.Context, cmd string, in args) error {
	switch cmd {
	case "register":
		return a.register(ctx, in)
	case "login":
		return a.login(ctx, in)
	case "logout":
		return a.logout(ctx)
	case "profile":
		return a.profile(ctx, in)
	case "interests":
		return a.interests(ctx, in)
	case "select":
		return a.selectInterests(ctx, in)
	case "events":
		return a.events(ctx)
	case "event":
		return a.eventDetail(ctx, in)
	case "rsvp":
		return a.rsvp(ctx, in)
	case "cancel":
		return a.cancelRSVP(ctx, in)
	case "friends":
		return a.friends(ctx)
	case "search":
		return a.searchUsers(ctx, in)
	case "add-friend":
		return a.addFriend(ctx, in)
	case "remove-friend":
		return a.removeFriend(ctx, in)
	case "feed":
		return a.feed(ctx)
	default:
		return fmt.Errorf("unknown command %q (see --help)", cmd)
	}
}

func (a *app) register(ctx context.Context, in args) error {
	sess, err := a.client.Auth.Register(ctx, domain.Registration{
		Username: in.username,
		Email:    in.email,
		Password: in.password,
	})
	if err != nil {
		return err
	}
	if err := a.sessions.Save(*sess); err != nil {
		return err
	}
	fmt.Println("Registered and signed in as", sess.Username)
	return nil
}

func (a *app) login(ctx context.Context, in args) error {
	sess, err := a.client.Auth.Login(ctx, domain.Credentials{
		Username: in.username,
		Password: in.password,
	})
	if err != nil {
		return err
	}
	if err := a.sessions.Save(*sess); err != nil {
		return err
	}
	fmt.Println("Signed in as", sess.Username)
	return nil
}

func (a *app) logout(ctx context.Context) error {
	if err := a.client.Auth.Logout(ctx); err != nil {
		return err
	}
	if err := a.sessions.Clear(); err != nil {
		return err
	}
	fmt.Println("Signed out")
	return nil
}

func (a *app) profile(ctx context.Context, in args) error {
	var (
		profile *domain.Profile
		err     error
	)
	if in.id > 0 {
		profile, err = a.client.Profiles.Get(ctx, in.id)
	} else {
		profile, err = a.client.Profiles.GetMine(ctx)
	}
	if err != nil {
		return err
	}
	if profile == nil {
		fmt.Println("No profile yet")
		return nil
	}

	fmt.Println(profile.DisplayName)
	if profile.Bio != "" {
		fmt.Println(" ", profile.Bio)
	}
	if profile.City != "" && profile.State != "" {
		fmt.Printf("  %s, %s\n", profile.City, profile.State)
	}
	return nil
}

func (a *app) interests(ctx context.Context, in args) error {
	interests, err := a.client.Interests.ListWithSubInterests(ctx)
	if err != nil {
		return err
	}
	for _, interest := range display.FilterInterestsBySearchTerm(interests, in.query) {
		fmt.Printf("[%d] %s: %s\n", interest.ID, interest.Name, interest.Description)
		for _, sub := range interest.SubInterests {
			fmt.Printf("    [%d] %s\n", sub.ID, sub.Name)
		}
	}
	return nil
}

// selectInterests runs the onboarding batch add for the given
// sub-interest IDs, reporting partial progress when a call fails midway.
func (a *app) selectInterests(ctx context.Context, in args) error {
	ids, err := parseIDs(in.subs)
	if err != nil {
		return err
	}

	onboarding := flow.NewOnboarding(a.client.Interests, a.client.UserInterests)
	if in.id > 0 {
		if _, err := onboarding.OpenCategory(ctx, in.id); err != nil {
			return err
		}
	}
	for _, subID := range ids {
		onboarding.Toggle(subID)
	}

	results, err := onboarding.Submit(ctx)
	if err != nil {
		fmt.Printf("Added %d of %d before failing\n", flow.Applied(results), len(ids))
		return err
	}

	if nav, ok := onboarding.ConsumeNavState(); ok && nav.ShowSuccessMessage {
		fmt.Printf("Added %d interest(s) to your profile\n", nav.AddedCount)
	}
	return nil
}

func (a *app) events(ctx context.Context) error {
	events, err := a.client.Events.List(ctx)
	if err != nil {
		return err
	}
	for _, event := range display.SortEventsByDate(events) {
		fmt.Printf("[%d] %s | %s (%s)\n",
			event.ID, event.Title, display.FormatDateTime(event.StartDateTime), event.EventType)
	}
	return nil
}

func (a *app) eventDetail(ctx context.Context, in args) error {
	rsvpFlow := flow.NewRSVPFlow(a.client.Events, a.client.Attendance, in.id)
	if err := rsvpFlow.Load(ctx); err != nil {
		return err
	}

	event := rsvpFlow.Event()
	fmt.Println(event.Title)
	fmt.Println("  Organizer:", event.OrganizerUsername)
	fmt.Println("  Start:", display.FormatDateTime(event.StartDateTime))
	fmt.Println("  End:  ", display.FormatDateTime(event.EndDateTime))
	switch event.EventType {
	case domain.EventOnline:
		fmt.Println("  Meeting:", event.MeetingURL)
	case domain.EventInPerson:
		fmt.Printf("  Location: %s, %s\n", event.City, event.State)
	}
	fmt.Printf("  Attendees: %d going\n", event.AttendeeCount)
	if mine := rsvpFlow.Attendance(); mine != nil {
		fmt.Println("  Your RSVP:", mine.Status)
	}
	return nil
}

func (a *app) rsvp(ctx context.Context, in args) error {
	rsvpFlow := flow.NewRSVPFlow(a.client.Events, a.client.Attendance, in.id)
	if err := rsvpFlow.Load(ctx); err != nil {
		return err
	}
	if err := rsvpFlow.HandleRSVP(ctx, in.status); err != nil {
		return err
	}

	event := rsvpFlow.Event()
	fmt.Printf("RSVP recorded: %s (%d going)\n", rsvpFlow.Attendance().Status, event.AttendeeCount)
	return nil
}

func (a *app) cancelRSVP(ctx context.Context, in args) error {
	rsvpFlow := flow.NewRSVPFlow(a.client.Events, a.client.Attendance, in.id)
	if err := rsvpFlow.Load(ctx); err != nil {
		return err
	}
	if err := rsvpFlow.Cancel(ctx); err != nil {
		return err
	}
	fmt.Println("RSVP cancelled")
	return nil
}

func (a *app) friends(ctx context.Context) error {
	friends, err := a.client.Friends.List(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("My Friends (%d)\n", len(friends))
	for _, friendship := range friends {
		name := friendship.FriendDisplayName
		if name == "" {
			name = friendship.FriendUsername
		}
		fmt.Printf("  [%d] %s (@%s)\n", friendship.FriendID, name, friendship.FriendUsername)
	}
	return nil
}

func (a *app) searchUsers(ctx context.Context, in args) error {
	if len(strings.TrimSpace(in.query)) < flow.MinQueryLength {
		return fmt.Errorf("query must be at least %d characters", flow.MinQueryLength)
	}
	results, err := a.client.Friends.Search(ctx, in.query)
	if err != nil {
		return err
	}
	for _, user := range results {
		marker := ""
		if user.IsFriend {
			marker = " (friend)"
		}
		name := user.DisplayName
		if name == "" {
			name = user.Username
		}
		fmt.Printf("  [%d] %s (@%s)%s\n", user.UserID, name, user.Username, marker)
	}
	return nil
}

func (a *app) addFriend(ctx context.Context, in args) error {
	if _, err := a.client.Friends.Add(ctx, in.id); err != nil {
		return err
	}
	fmt.Println("Friend added")
	return nil
}

func (a *app) removeFriend(ctx context.Context, in args) error {
	if err := a.client.Friends.Remove(ctx, in.id); err != nil {
		return err
	}
	fmt.Println("Friend removed")
	return nil
}

func (a *app) feed(ctx context.Context) error {
	items, err := a.client.Activity.Feed(ctx)
	if err != nil {
		return err
	}
	for _, item := range items {
		fmt.Printf("%s  (%s)\n", display.ActivityMessage(item), display.TimeAgo(item.Timestamp))
	}
	return nil
}

// parseIDs splits a comma-separated ID list.
func parseIDs(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("--subs requires a comma-separated list of sub-interest IDs")
	}

	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid sub-interest ID %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
