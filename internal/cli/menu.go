package cli

import (
	"context"
	"fmt"
)

// Run starts the top-level menu loop and blocks until the operator exits
// or input ends. Unrecognized choices re-prompt; "0" backs out a level.
func (s *Shell) Run(ctx context.Context) {
	for {
		fmt.Fprintln(s.out, "\n=== Health & Fitness Club Management ===")
		fmt.Fprintln(s.out, "1. Member Functions")
		fmt.Fprintln(s.out, "2. Trainer Functions")
		fmt.Fprintln(s.out, "3. Admin Functions")
		fmt.Fprintln(s.out, "0. Exit")
		choice, ok := s.prompt("Choice")
		if !ok {
			return
		}
		switch choice {
		case "1":
			if !s.memberMenu(ctx) {
				return
			}
		case "2":
			if !s.trainerMenu(ctx) {
				return
			}
		case "3":
			admin, err := s.authenticateAdmin(ctx)
			if err != nil {
				s.reportError(err)
				continue
			}
			if admin == nil {
				return // input ended mid-login
			}
			s.ok.Fprintf(s.out, "Authenticated as %s\n", admin.Name)
			if !s.adminMenu(ctx) {
				return
			}
		case "0":
			return
		default:
			s.warn.Fprintln(s.out, "Invalid choice.")
		}
	}
}

// memberMenu loops over the member operations. It returns false only when
// input ended, so the caller can stop too.
func (s *Shell) memberMenu(ctx context.Context) bool {
	for {
		fmt.Fprintln(s.out, "\n--- Member Menu ---")
		fmt.Fprintln(s.out, "1. Register Member")
		fmt.Fprintln(s.out, "2. Update Member Profile")
		fmt.Fprintln(s.out, "3. Add Health Metric")
		fmt.Fprintln(s.out, "4. Set Fitness Goal")
		fmt.Fprintln(s.out, "5. Book PT Session")
		fmt.Fprintln(s.out, "6. View Available Classes")
		fmt.Fprintln(s.out, "7. Sign Up for Class")
		fmt.Fprintln(s.out, "0. Back")
		choice, ok := s.prompt("Choice")
		if !ok {
			return false
		}
		switch choice {
		case "1":
			s.registerMember(ctx)
		case "2":
			s.updateMemberProfile(ctx)
		case "3":
			s.addHealthMetric(ctx)
		case "4":
			s.setFitnessGoal(ctx)
		case "5":
			s.bookPTSession(ctx)
		case "6":
			s.viewAvailableClasses(ctx)
		case "7":
			s.signUpForClass(ctx)
		case "0":
			return true
		default:
			s.warn.Fprintln(s.out, "Invalid choice.")
		}
	}
}

func (s *Shell) trainerMenu(ctx context.Context) bool {
	for {
		fmt.Fprintln(s.out, "\n--- Trainer Menu ---")
		fmt.Fprintln(s.out, "1. View Schedule")
		fmt.Fprintln(s.out, "2. Member Lookup")
		fmt.Fprintln(s.out, "0. Back")
		choice, ok := s.prompt("Choice")
		if !ok {
			return false
		}
		switch choice {
		case "1":
			s.viewTrainerSchedule(ctx)
		case "2":
			s.memberLookup(ctx)
		case "0":
			return true
		default:
			s.warn.Fprintln(s.out, "Invalid choice.")
		}
	}
}

func (s *Shell) adminMenu(ctx context.Context) bool {
	for {
		fmt.Fprintln(s.out, "\n--- Admin Menu ---")
		fmt.Fprintln(s.out, "1. Create Trainer")
		fmt.Fprintln(s.out, "2. Create Room")
		fmt.Fprintln(s.out, "3. Create Class")
		fmt.Fprintln(s.out, "0. Back")
		choice, ok := s.prompt("Choice")
		if !ok {
			return false
		}
		switch choice {
		case "1":
			s.createTrainer(ctx)
		case "2":
			s.createRoom(ctx)
		case "3":
			s.createClass(ctx)
		case "0":
			return true
		default:
			s.warn.Fprintln(s.out, "Invalid choice.")
		}
	}
}
