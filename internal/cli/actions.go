package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/clubops/fitclub/internal/club"
	"github.com/clubops/fitclub/internal/model"
)

func (s *Shell) registerMember(ctx context.Context) {
	fmt.Fprintln(s.out, "\n=== Register New Member ===")
	name, ok := s.prompt("Name")
	if !ok {
		return
	}
	email, ok := s.prompt("Email")
	if !ok {
		return
	}
	dob, ok := s.prompt("Date of birth (YYYY-MM-DD, optional)")
	if !ok {
		return
	}
	gender, ok := s.prompt("Gender (optional)")
	if !ok {
		return
	}
	phone, ok := s.prompt("Phone (optional)")
	if !ok {
		return
	}

	res, err := s.svc.RegisterMember(ctx, club.RegisterMemberArgs{
		Name:        name,
		Email:       email,
		DateOfBirth: dob,
		Gender:      gender,
		Phone:       phone,
	})
	if err != nil {
		s.reportError(err)
		return
	}
	if res.DateOfBirthDropped {
		s.warn.Fprintln(s.out, "Invalid date format. Member registered without date of birth.")
	}
	s.ok.Fprintf(s.out, "Member registered with ID: %d\n", res.Member.ID)
}

func (s *Shell) updateMemberProfile(ctx context.Context) {
	fmt.Fprintln(s.out, "\n=== Update Member Profile ===")
	id, ok := s.promptInt64("Member ID")
	if !ok {
		return
	}

	fmt.Fprintln(s.out, "Leave field blank to keep current value.")
	name, ok := s.prompt("New name")
	if !ok {
		return
	}
	phone, ok := s.prompt("New phone")
	if !ok {
		return
	}

	m, err := s.svc.UpdateMemberProfile(ctx, id, name, phone)
	if err != nil {
		s.reportError(err)
		return
	}
	s.ok.Fprintln(s.out, "Profile updated successfully!")
	fmt.Fprintf(s.out, "  Name: %s\n", m.Name)
	fmt.Fprintf(s.out, "  Phone: %s\n", orNotSet(m.Phone))
}

func (s *Shell) addHealthMetric(ctx context.Context) {
	fmt.Fprintln(s.out, "\n=== Add Health Metric ===")
	id, ok := s.promptInt64("Member ID")
	if !ok {
		return
	}
	metricType, ok := s.prompt("Metric type (e.g. 'Weight (kg)')")
	if !ok {
		return
	}
	value, ok := s.promptFloat("Metric value")
	if !ok {
		return
	}

	if _, err := s.svc.RecordHealthMetric(ctx, id, metricType, value); err != nil {
		s.reportError(err)
		return
	}
	s.ok.Fprintln(s.out, "Metric recorded.")
}

func (s *Shell) setFitnessGoal(ctx context.Context) {
	fmt.Fprintln(s.out, "\n=== Set Fitness Goal ===")
	id, ok := s.promptInt64("Member ID")
	if !ok {
		return
	}
	goalType, ok := s.prompt("Goal type (e.g. 'Weight (kg)')")
	if !ok {
		return
	}
	raw, ok := s.prompt("Target value (optional)")
	if !ok {
		return
	}
	args := club.SetFitnessGoalArgs{MemberID: id, GoalType: goalType}
	if raw != "" {
		var v float64
		if _, err := fmt.Sscanf(raw, "%f", &v); err != nil {
			s.warn.Fprintln(s.out, "Please enter a numeric value.")
			return
		}
		args.TargetValue = &v
	}
	if args.StartDate, ok = s.prompt("Start date (YYYY-MM-DD, optional)"); !ok {
		return
	}
	if args.EndDate, ok = s.prompt("End date (YYYY-MM-DD, optional)"); !ok {
		return
	}

	g, err := s.svc.SetFitnessGoal(ctx, args)
	if err != nil {
		s.reportError(err)
		return
	}
	s.ok.Fprintf(s.out, "Goal recorded with ID: %d\n", g.ID)
}

func (s *Shell) bookPTSession(ctx context.Context) {
	fmt.Fprintln(s.out, "\n=== Book PT Session ===")
	memberID, ok := s.promptInt64("Member ID")
	if !ok {
		return
	}
	trainerID, ok := s.promptInt64("Trainer ID")
	if !ok {
		return
	}
	at, ok := s.prompt("Session time (YYYY-MM-DD HH:MM)")
	if !ok {
		return
	}

	if _, err := s.svc.BookPTSession(ctx, memberID, trainerID, at); err != nil {
		s.reportError(err)
		return
	}
	s.ok.Fprintln(s.out, "Session booked.")
}

func (s *Shell) viewAvailableClasses(ctx context.Context) {
	fmt.Fprintln(s.out, "\n=== Available Classes ===")
	listings, err := s.svc.ListAvailableClasses(ctx)
	if err != nil {
		s.reportError(err)
		return
	}
	if len(listings) == 0 {
		fmt.Fprintln(s.out, "No classes available.")
		return
	}

	fmt.Fprintf(s.out, "\n%-6s %-25s %-18s %-20s %-15s %-10s %s\n",
		"ID", "Class Name", "Time", "Trainer", "Room", "Enrolled", "Status")
	for _, l := range listings {
		status := fmt.Sprintf("%d spots", l.Remaining)
		if l.Full() {
			status = "FULL"
		}
		fmt.Fprintf(s.out, "%-6d %-25s %-18s %-20s %-15s %-10s %s\n",
			l.ID, truncate(l.Name, 24), l.Time.Format(club.DateTimeLayout),
			truncate(l.TrainerName, 19), truncate(l.RoomName, 14),
			fmt.Sprintf("%d/%d", l.Enrolled, l.Capacity), status)
	}
}

func (s *Shell) signUpForClass(ctx context.Context) {
	fmt.Fprintln(s.out, "\n=== Sign Up for Class ===")
	memberID, ok := s.promptInt64("Member ID")
	if !ok {
		return
	}

	s.viewAvailableClasses(ctx)

	classID, ok := s.promptInt64("Enter Class ID to enroll")
	if !ok {
		return
	}

	res, err := s.svc.EnrollMemberInClass(ctx, memberID, classID)
	if err != nil {
		s.reportError(err)
		return
	}
	s.ok.Fprintf(s.out, "Successfully enrolled in '%s'!\n", res.Class.Name)
	fmt.Fprintf(s.out, "  Class time: %s\n", res.Class.Time.Format(club.DateTimeLayout))
	fmt.Fprintf(s.out, "  Spaces remaining: %d\n", res.Remaining)
}

func (s *Shell) viewTrainerSchedule(ctx context.Context) {
	fmt.Fprintln(s.out, "\n=== Trainer Schedule ===")
	trainerID, ok := s.promptInt64("Trainer ID")
	if !ok {
		return
	}

	sched, err := s.svc.GetTrainerSchedule(ctx, trainerID)
	if err != nil {
		s.reportError(err)
		return
	}

	fmt.Fprintln(s.out, "\n-- PT Sessions --")
	if len(sched.Sessions) == 0 {
		fmt.Fprintln(s.out, "No PT sessions scheduled.")
	}
	for _, sess := range sched.Sessions {
		fmt.Fprintf(s.out, "Session %d | %s | Member: %s | Status: %s\n",
			sess.ID, sess.Time.Format(club.DateTimeLayout), sess.MemberName, sess.Status)
	}

	fmt.Fprintln(s.out, "\n-- Classes --")
	if len(sched.Classes) == 0 {
		fmt.Fprintln(s.out, "No classes scheduled.")
	}
	for _, c := range sched.Classes {
		fmt.Fprintf(s.out, "Class %d | %s | %s @ %s\n",
			c.ID, c.Time.Format(club.DateTimeLayout), c.Name, c.RoomName)
	}
}

func (s *Shell) memberLookup(ctx context.Context) {
	fmt.Fprintln(s.out, "\n=== Member Lookup ===")
	fragment, ok := s.prompt("Search name (partial allowed)")
	if !ok {
		return
	}

	members, err := s.svc.SearchMembers(ctx, fragment)
	if err != nil {
		s.reportError(err)
		return
	}
	if len(members) == 0 {
		fmt.Fprintln(s.out, "No members found.")
		return
	}
	for _, m := range members {
		fmt.Fprintf(s.out, "%d: %s (%s)\n", m.ID, m.Name, m.Email)
	}

	memberID, ok := s.promptInt64("Enter Member ID to view details")
	if !ok {
		return
	}

	det, err := s.svc.GetMemberDetail(ctx, memberID)
	if err != nil {
		s.reportError(err)
		return
	}

	fmt.Fprintln(s.out, "\n-- Latest Metric --")
	if det.LatestMetric == nil {
		fmt.Fprintln(s.out, "No metrics recorded.")
	} else {
		fmt.Fprintf(s.out, "%s: %.2f (%s)\n",
			det.LatestMetric.MetricType, det.LatestMetric.Value,
			det.LatestMetric.RecordedAt.Format(club.DateTimeLayout))
	}

	fmt.Fprintln(s.out, "\n-- Goals --")
	if len(det.Goals) == 0 {
		fmt.Fprintln(s.out, "No goals defined.")
	}
	for _, g := range det.Goals {
		fmt.Fprintf(s.out, "%s target %s (%s -> %s)\n",
			g.GoalType, orDash(g.TargetValue), orDashDate(g.StartDate), orDashDate(g.EndDate))
	}
}

// authenticateAdmin prompts for credentials and verifies them. A nil
// admin with a nil error means input ended.
func (s *Shell) authenticateAdmin(ctx context.Context) (*model.Admin, error) {
	fmt.Fprintln(s.out, "\n=== Admin Authentication ===")
	username, ok := s.prompt("Username")
	if !ok {
		return nil, nil
	}
	password, ok := s.prompt("Password")
	if !ok {
		return nil, nil
	}
	return s.svc.AuthenticateAdmin(ctx, username, password)
}

func (s *Shell) createTrainer(ctx context.Context) {
	fmt.Fprintln(s.out, "\n=== Create Trainer ===")
	name, ok := s.prompt("Trainer name")
	if !ok {
		return
	}
	email, ok := s.prompt("Email")
	if !ok {
		return
	}
	spec, ok := s.prompt("Specialization (optional)")
	if !ok {
		return
	}

	t, err := s.svc.CreateTrainer(ctx, club.CreateTrainerArgs{Name: name, Email: email, Specialization: spec})
	if err != nil {
		s.reportError(err)
		return
	}
	s.ok.Fprintf(s.out, "Trainer created with ID: %d\n", t.ID)
}

func (s *Shell) createRoom(ctx context.Context) {
	fmt.Fprintln(s.out, "\n=== Create Room ===")
	name, ok := s.prompt("Room name")
	if !ok {
		return
	}
	capacity, ok := s.promptInt64("Capacity")
	if !ok {
		return
	}

	room, err := s.svc.CreateRoom(ctx, club.CreateRoomArgs{Name: name, Capacity: int(capacity)})
	if err != nil {
		s.reportError(err)
		return
	}
	s.ok.Fprintf(s.out, "Room created with ID: %d\n", room.ID)
}

func (s *Shell) createClass(ctx context.Context) {
	fmt.Fprintln(s.out, "\n=== Create Class ===")
	trainerID, ok := s.promptInt64("Trainer ID")
	if !ok {
		return
	}
	roomID, ok := s.promptInt64("Room ID")
	if !ok {
		return
	}
	name, ok := s.prompt("Class name")
	if !ok {
		return
	}
	at, ok := s.prompt("Class time (YYYY-MM-DD HH:MM)")
	if !ok {
		return
	}
	capacity, ok := s.promptInt64("Capacity")
	if !ok {
		return
	}

	c, err := s.svc.CreateClass(ctx, club.CreateClassArgs{
		TrainerID: trainerID,
		RoomID:    roomID,
		Name:      name,
		Time:      at,
		Capacity:  int(capacity),
	})
	if err != nil {
		s.reportError(err)
		return
	}
	s.ok.Fprintf(s.out, "Class created with ID: %d\n", c.ID)
}

func truncate(v string, n int) string {
	if len(v) <= n {
		return v
	}
	return v[:n]
}

func orNotSet(v *string) string {
	if v == nil {
		return "(not set)"
	}
	return *v
}

func orDash(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}

func orDashDate(v *time.Time) string {
	if v == nil {
		return "-"
	}
	return v.Format(club.DateLayout)
}
