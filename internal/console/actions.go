package console

import (
	"context"
	"fmt"
	authDto "hotel/internal/domains/auth/model/dto"
	availabilityDto "hotel/internal/domains/availability/model/dto"
	bookingDto "hotel/internal/domains/booking/model/dto"
	hotelModel "hotel/internal/domains/hotel/model"
	repairDto "hotel/internal/domains/repair/model/dto"
	roomDto "hotel/internal/domains/room/model/dto"
	"hotel/shared"
	"hotel/shared/failure"
	"strconv"
)

func (c *Console) createUser(ctx context.Context) error {
	name, err := c.prompt("\tEnter name: ")
	if err != nil {
		return err
	}

	password, err := c.prompt("\tEnter password: ")
	if err != nil {
		return err
	}

	res, err := c.auth.Register(ctx, authDto.RegisterRequest{Name: name, Password: password})
	if err != nil {
		return err //nolint:wrapcheck
	}

	c.printf("User successfully created with userID = %d\n", res.UserID)

	return nil
}

func (c *Console) logIn(ctx context.Context) error {
	rawID, err := c.prompt("\tEnter userID: ")
	if err != nil {
		return err
	}

	password, err := c.prompt("\tEnter password: ")
	if err != nil {
		return err
	}

	// an unparsable ID gets the same answer as a wrong password
	userID, _ := strconv.ParseInt(rawID, 10, 64)

	identity, err := c.auth.Authenticate(ctx, authDto.LoginRequest{UserID: userID, Password: password})
	if err != nil {
		return err //nolint:wrapcheck
	}

	c.session.Login(identity.UserID)
	c.printf("Welcome, %s!\n", identity.Name)

	return nil
}

func (c *Console) readFloat(label string) (float64, error) {
	raw, err := c.prompt(label)
	if err != nil {
		return 0, err
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, failure.BadRequestFromString("your input is not a number") //nolint:wrapcheck
	}

	return value, nil
}

// readID parses a positive identifier and rejects anything else.
func (c *Console) readID(label, name string) (int64, error) {
	raw, err := c.prompt(label)
	if err != nil {
		return 0, err
	}

	return shared.ParseID(raw, name) //nolint:wrapcheck
}

// readLenientID leaves validation to the service, which authorizes the
// caller first. Unparsable input becomes zero and is rejected there.
func (c *Console) readLenientID(label string) (int64, error) {
	raw, err := c.prompt(label)
	if err != nil {
		return 0, err
	}

	id, _ := strconv.ParseInt(raw, 10, 64)

	return id, nil
}

func (c *Console) hotelsWithin(ctx context.Context) error {
	latitude, err := c.readFloat("Enter latitude: ")
	if err != nil {
		return err
	}

	longitude, err := c.readFloat("Enter longitude: ")
	if err != nil {
		return err
	}

	radius := c.cfg.App.SearchRadius

	names, err := c.hotel.HotelsWithin(ctx, hotelModel.Coordinate{Latitude: latitude, Longitude: longitude}, radius)
	if err != nil {
		return err //nolint:wrapcheck
	}

	c.printf("Hotels within %v units of (%v, %v):\n", radius, latitude, longitude)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name})
	}

	c.table([]string{"hotel_name"}, rows)

	return nil
}

func roomRows(rooms []roomDto.RoomResponse) [][]string {
	rows := make([][]string, 0, len(rooms))
	for _, room := range rooms {
		rows = append(rows, []string{strconv.FormatInt(room.RoomNumber, 10), strconv.FormatInt(room.Price, 10)})
	}

	return rows
}

func (c *Console) viewRooms(ctx context.Context) error {
	hotelID, err := c.readID("Enter Hotel ID: ", "hotel id")
	if err != nil {
		return err
	}

	date, err := c.prompt("Enter date (MM/DD/YYYY): ")
	if err != nil {
		return err
	}

	res, err := c.availability.Rooms(ctx, availabilityDto.RoomsRequest{HotelID: hotelID, Date: date})
	if err != nil {
		return err //nolint:wrapcheck
	}

	c.printf("Available rooms in hotel #%d for %s:\n", hotelID, res.Date)

	if len(res.Available) == 0 {
		c.println("\tNo available rooms for given date.")
	} else {
		c.table([]string{"room_number", "price"}, roomRows(res.Available))
	}

	c.printf("Unavailable rooms in hotel #%d for %s:\n", hotelID, res.Date)

	if len(res.Booked) == 0 {
		c.println("\tAll rooms are available for the given date.")
	} else {
		c.table([]string{"room_number", "price"}, roomRows(res.Booked))
	}

	return nil
}

func (c *Console) bookRoom(ctx context.Context) error {
	hotelID, err := c.readID("Enter Hotel ID: ", "hotel id")
	if err != nil {
		return err
	}

	roomNumber, err := c.readID("Enter Room #: ", "room number")
	if err != nil {
		return err
	}

	date, err := c.prompt("Enter the date (MM/DD/YYYY): ")
	if err != nil {
		return err
	}

	res, err := c.booking.Book(ctx, bookingDto.BookRequest{HotelID: hotelID, RoomNumber: roomNumber, Date: date})
	if err != nil {
		if res.ID == 0 {
			return err //nolint:wrapcheck
		}

		c.printf("Room #%d at Hotel #%d has been booked for %s (booking #%d).\n", roomNumber, hotelID, res.Date, res.ID)

		return err //nolint:wrapcheck
	}

	c.printf("Room #%d at Hotel #%d has been booked for %s (booking #%d). The price is %d.\n",
		roomNumber, hotelID, res.Date, res.ID, res.Price)

	return nil
}

func (c *Console) recentBookings(ctx context.Context) error {
	bookings, err := c.booking.RecentBookings(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if len(bookings) == 0 {
		c.println("No recent bookings.")

		return nil
	}

	c.println("Latest 5 recent bookings:")

	rows := make([][]string, 0, len(bookings))
	for _, booking := range bookings {
		rows = append(rows, []string{
			strconv.FormatInt(booking.HotelID, 10),
			strconv.FormatInt(booking.RoomNumber, 10),
			strconv.FormatInt(booking.Price, 10),
			booking.Date,
		})
	}

	c.table([]string{"hotel_id", "room_number", "price", "booking_date"}, rows)

	return nil
}

func (c *Console) updateRoom(ctx context.Context) error {
	hotelID, err := c.readLenientID("Enter Hotel ID: ")
	if err != nil {
		return err
	}

	roomNumber, err := c.readLenientID("Enter Room #: ")
	if err != nil {
		return err
	}

	rawPrice, err := c.prompt("Enter new room price: ")
	if err != nil {
		return err
	}

	imageURL, err := c.prompt("Enter Image URL: ")
	if err != nil {
		return err
	}

	price, _ := strconv.ParseFloat(rawPrice, 64)

	err = c.room.Update(ctx, roomDto.UpdateRoomRequest{
		HotelID:    hotelID,
		RoomNumber: roomNumber,
		Price:      price,
		ImageURL:   imageURL,
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	c.printf("Room %d has been updated.\n", roomNumber)

	return nil
}

func (c *Console) recentUpdates(ctx context.Context) error {
	updates, err := c.room.RecentUpdates(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if len(updates) == 0 {
		c.println("No recent updates.")

		return nil
	}

	c.println("Latest 5 recent updates made to your hotel:")

	rows := make([][]string, 0, len(updates))
	for _, update := range updates {
		rows = append(rows, []string{
			strconv.FormatInt(update.ID, 10),
			strconv.FormatInt(update.HotelID, 10),
			strconv.FormatInt(update.RoomNumber, 10),
			update.UpdatedOn,
		})
	}

	c.table([]string{"update_number", "hotel_id", "room_number", "updated_on"}, rows)

	return nil
}

func (c *Console) bookingHistory(ctx context.Context) error {
	start, err := c.prompt("Enter start date (MM/DD/YYYY): ")
	if err != nil {
		return err
	}

	end, err := c.prompt("Enter end date (MM/DD/YYYY): ")
	if err != nil {
		return err
	}

	bookings, err := c.booking.HotelBookingHistory(ctx, bookingDto.HistoryRequest{Start: start, End: end})
	if err != nil {
		return err //nolint:wrapcheck
	}

	c.printf("Booking history between %s-%s:\n", start, end)

	if len(bookings) == 0 {
		c.println("\tNo bookings made.")

		return nil
	}

	rows := make([][]string, 0, len(bookings))
	for _, booking := range bookings {
		rows = append(rows, []string{
			strconv.FormatInt(booking.ID, 10),
			booking.CustomerName,
			strconv.FormatInt(booking.HotelID, 10),
			strconv.FormatInt(booking.RoomNumber, 10),
			booking.Date,
		})
	}

	c.table([]string{"booking_id", "customer_name", "hotel_id", "room_number", "booking_date"}, rows)

	return nil
}

func (c *Console) regularCustomers(ctx context.Context) error {
	hotelID, err := c.readLenientID("Enter Hotel ID: ")
	if err != nil {
		return err
	}

	customers, err := c.booking.RegularCustomers(ctx, hotelID)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if len(customers) == 0 {
		c.println("No regular customers.")

		return nil
	}

	c.printf("Top 5 regular customers for hotel #%d:\n", hotelID)

	rows := make([][]string, 0, len(customers))
	for _, customer := range customers {
		rows = append(rows, []string{
			strconv.FormatInt(customer.CustomerID, 10),
			customer.Name,
			strconv.FormatInt(customer.Bookings, 10),
		})
	}

	c.table([]string{"customer_id", "name", "bookings"}, rows)

	return nil
}

func (c *Console) repairRequest(ctx context.Context) error {
	hotelID, err := c.readLenientID("Enter Hotel ID: ")
	if err != nil {
		return err
	}

	roomNumber, err := c.readLenientID("Enter Room #: ")
	if err != nil {
		return err
	}

	companyID, err := c.readLenientID("Enter Company ID: ")
	if err != nil {
		return err
	}

	res, err := c.repair.RequestRepair(ctx, repairDto.RepairRequest{
		HotelID:    hotelID,
		RoomNumber: roomNumber,
		CompanyID:  companyID,
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	c.printf("A request has been made for Hotel #%d, Room #%d with Company #%d (request #%d).\n",
		res.HotelID, res.RoomNumber, res.CompanyID, res.RequestID)

	return nil
}

func (c *Console) repairHistory(ctx context.Context) error {
	history, err := c.repair.History(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if len(history) == 0 {
		c.println("No repair request history.")

		return nil
	}

	c.println("Room repair requests history:")

	rows := make([][]string, 0, len(history))
	for _, entry := range history {
		rows = append(rows, []string{
			strconv.FormatInt(entry.RequestID, 10),
			strconv.FormatInt(entry.CompanyID, 10),
			strconv.FormatInt(entry.HotelID, 10),
			strconv.FormatInt(entry.RoomNumber, 10),
			entry.RepairDate,
		})
	}

	c.table([]string{"request_id", "company_id", "hotel_id", "room_number", "repair_date"}, rows)

	return nil
}

// Usage is printed when the program is started with the wrong arguments.
func Usage(program string) string {
	return fmt.Sprintf("Usage: %s <dbname> <port> <user>", program)
}
