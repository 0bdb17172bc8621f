// Package console is the interactive terminal front end. It reads menu choices
// line by line, keeps the signed-in user in a session.State and passes that
// identity to the domain services with every call.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	authService "hotel/internal/domains/auth/service"
	availabilityService "hotel/internal/domains/availability/service"
	bookingService "hotel/internal/domains/booking/service"
	hotelService "hotel/internal/domains/hotel/service"
	repairService "hotel/internal/domains/repair/service"
	roomService "hotel/internal/domains/room/service"
	"hotel/internal/session"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
)

// action is one menu entry. It returns an error only for failures the user
// should see; the session is never changed by a failed action.
type action func(ctx context.Context) error

type Console struct {
	cfg          *config.Config
	auth         authService.Auth
	hotel        hotelService.Hotel
	availability availabilityService.Availability
	booking      bookingService.Booking
	room         roomService.Room
	repair       repairService.Repair
	otel         otel.Otel
	session      *session.State

	in  *bufio.Scanner
	out io.Writer
}

func New(
	cfg *config.Config,
	auth authService.Auth,
	hotel hotelService.Hotel,
	availability availabilityService.Availability,
	booking bookingService.Booking,
	room roomService.Room,
	repair repairService.Repair,
	otel otel.Otel,
) *Console {
	return &Console{
		cfg:          cfg,
		auth:         auth,
		hotel:        hotel,
		availability: availability,
		booking:      booking,
		room:         room,
		repair:       repair,
		otel:         otel,
		session:      session.New(),
	}
}

// Run drives the menus until the user exits or in is exhausted.
func (c *Console) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	c.in = bufio.NewScanner(in)
	c.out = out

	for {
		if c.session.Authenticated() {
			if err := c.userMenu(ctx); err != nil {
				return ignoreEOF(err)
			}

			continue
		}

		exit, err := c.mainMenu(ctx)
		if err != nil {
			return ignoreEOF(err)
		}

		if exit {
			return nil
		}
	}
}

func (c *Console) mainMenu(ctx context.Context) (bool, error) {
	c.println("MAIN MENU")
	c.println("---------")
	c.println("1. Create user")
	c.println("2. Log in")
	c.println("9. < EXIT")

	choice, err := c.readChoice()
	if err != nil {
		return false, err
	}

	switch choice {
	case 1:
		c.perform(ctx, "CreateUser", c.createUser)
	case 2:
		c.perform(ctx, "LogIn", c.logIn)
	case 9:
		return true, nil
	default:
		c.println("Unrecognized choice!")
	}

	return false, nil
}

func (c *Console) userMenu(ctx context.Context) error {
	c.println("MAIN MENU")
	c.println("---------")
	c.printf("1. View Hotels within %v units\n", c.cfg.App.SearchRadius)
	c.println("2. View Rooms")
	c.println("3. Book a Room")
	c.println("4. View recent booking history")
	c.println("")
	c.println("5. Update Room Information")
	c.println("6. View 5 recent Room Updates Info")
	c.println("7. View booking history of the hotel")
	c.println("8. View 5 regular Customers")
	c.println("9. Place room repair Request to a company")
	c.println("10. View room repair Requests history")
	c.println(".........................")
	c.println("20. Log out")

	choice, err := c.readChoice()
	if err != nil {
		return err
	}

	actions := map[int]struct {
		name string
		fn   action
	}{
		1:  {"HotelsWithin", c.hotelsWithin},
		2:  {"ViewRooms", c.viewRooms},
		3:  {"BookRoom", c.bookRoom},
		4:  {"RecentBookings", c.recentBookings},
		5:  {"UpdateRoom", c.updateRoom},
		6:  {"RecentUpdates", c.recentUpdates},
		7:  {"BookingHistory", c.bookingHistory},
		8:  {"RegularCustomers", c.regularCustomers},
		9:  {"RepairRequest", c.repairRequest},
		10: {"RepairHistory", c.repairHistory},
	}

	if choice == 20 {
		c.session.Logout()
		c.println("Logged out.")

		return nil
	}

	selected, ok := actions[choice]
	if !ok {
		c.println("Unrecognized choice!")

		return nil
	}

	c.perform(ctx, selected.name, selected.fn)

	return nil
}

// perform runs an action for the current session and turns its error into a message.
func (c *Console) perform(ctx context.Context, name string, fn action) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelConsoleScopeName, constant.OtelConsoleScopeName+"."+name)
	defer scope.End()

	err := fn(c.session.Context(ctx))
	if err == nil {
		return
	}

	scope.TraceError(err)

	if errors.Is(err, io.EOF) {
		return
	}

	var fail *failure.Failure
	if errors.As(err, &fail) {
		c.println(fail.Message)

		return
	}

	log.Error().Err(err).Str("action", name).Msg("console action failed")
	c.printf("Error: %v\n", err)
}

func (c *Console) readChoice() (int, error) {
	for {
		line, err := c.prompt("Please make your choice: ")
		if err != nil {
			return 0, err
		}

		choice, err := strconv.Atoi(line)
		if err == nil {
			return choice, nil
		}

		c.println("Your input is invalid!")
	}
}

// prompt prints label and returns the next trimmed input line.
func (c *Console) prompt(label string) (string, error) {
	c.printf("%s", label)

	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		return "", io.EOF
	}

	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) table(headers []string, rows [][]string) {
	writer := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(writer, strings.Join(headers, "\t"))

	for _, row := range rows {
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}

	_ = writer.Flush()

	c.printf("total row(s): %d\n", len(rows))
}

func (c *Console) println(line string) {
	fmt.Fprintln(c.out, line)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}
