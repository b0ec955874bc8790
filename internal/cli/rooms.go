package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-PetHotelService/internal/service/rooms/models"
)

// RoomsCmd управление номерами
func RoomsCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "Manage rooms",
	}

	cmd.AddCommand(roomsListCmd(configPath))
	cmd.AddCommand(roomsAddCmd(configPath))

	return cmd
}

func roomsListCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List rooms",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			env, err := bootstrap(ctx, bootstrapOptions{configPath: *configPath})
			if err != nil {
				return err
			}
			defer env.Close()

			resp, err := env.app.Rooms.List(ctx)
			if err != nil {
				return err
			}

			renderRooms(os.Stdout, resp)
			return nil
		},
	}
}

func roomsAddCmd(configPath *string) *cobra.Command {
	var (
		req         models.CreateRoomRequest
		description string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a room",
		RunE: func(cmd *cobra.Command, args []string) error {
			if description != "" {
				req.Description = &description
			}

			ctx := context.Background()
			env, err := bootstrap(ctx, bootstrapOptions{configPath: *configPath})
			if err != nil {
				return err
			}
			defer env.Close()

			room, err := env.app.Rooms.Create(ctx, &req)
			if err != nil {
				return err
			}

			fmt.Printf("%s room %d %q (small=%d, medium=%d, price=%.2f)\n",
				color.New(color.FgGreen).Sprint("CREATED"),
				room.ID, room.Name, room.SmallCapacity, room.MediumCapacity, room.NightlyPrice)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "room name (required)")
	cmd.Flags().IntVar(&req.SmallCapacity, "small", 0, "places for small pets")
	cmd.Flags().IntVar(&req.MediumCapacity, "medium", 0, "places for medium pets")
	cmd.Flags().Float64Var(&req.NightlyPrice, "price", 0, "price per pet per night")
	cmd.Flags().StringVar(&description, "description", "", "optional description")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func renderRooms(w io.Writer, resp *models.RoomListResponse) {
	if len(resp.Rooms) == 0 {
		fmt.Fprintln(w, "No rooms yet. Add one with `pethotel rooms add`.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-20s  %5s  %6s  %8s\n", "ID", "NAME", "SMALL", "MEDIUM", "PRICE")
	for _, room := range resp.Rooms {
		fmt.Fprintf(w, "%-4d  %-20s  %5d  %6d  %8.2f\n",
			room.ID, room.Name, room.SmallCapacity, room.MediumCapacity, room.NightlyPrice)
	}
}
