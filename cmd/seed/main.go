// Command seed fills an empty database with sample owners, gyms and members
// for local development. It is safe to run twice: an existing "owner" user
// stops it.
package main

import (
	"context"
	"fmt"
	"time"

	"gymdesk/internal/auth"
	"gymdesk/internal/config"
	"gymdesk/internal/db"
	"gymdesk/internal/gym"
	"gymdesk/internal/logger"
	"gymdesk/internal/member"
	"gymdesk/internal/membership"
	"gymdesk/internal/notification"
	"gymdesk/internal/payment"
	"gymdesk/internal/plan"
	"gymdesk/internal/staff"
	"gymdesk/internal/user"

	"github.com/jmoiron/sqlx"
)

type sampleUser struct {
	username, password, name, email, role string
}

var sampleUsers = []sampleUser{
	{"admin", "admin123", "Admin User", "admin@gymdesk.app", "admin"},
	{"owner", "owner123", "Gym Owner", "owner@gymdesk.app", "owner"},
}

var sampleGyms = []gym.CreateGymRequest{
	{Name: "Fitness Plus", Address: "123 Main Street", City: "Mumbai", State: "Maharashtra", Zipcode: "400001"},
	{Name: "PowerHouse Gym", Address: "456 Central Avenue", City: "Delhi", State: "Delhi", Zipcode: "110001"},
}

var planTypes = []struct {
	name     string
	duration int
	kind     string
}{
	{"Basic", 1, "monthly"},
	{"Standard", 3, "quarterly"},
	{"Premium", 6, "half-yearly"},
	{"Platinum", 12, "annual"},
}

var memberNames = []string{"Ravi Kumar", "Asha Patel", "Vikram Singh", "Neha Sharma", "Arjun Mehta", "Priya Nair"}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	database, err := db.Connect(cfg.Database.URL, db.PoolConfig{MaxOpenConns: 2})
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := seed(ctx, database); err != nil {
		logger.Fatalf("Seeding failed: %v", err)
	}
}

func seed(ctx context.Context, database *sqlx.DB) error {
	users := user.NewRepository(database)

	exists, err := users.UsernameExists(ctx, "owner")
	if err != nil {
		return err
	}
	if exists {
		logger.Info("Sample data already present, nothing to do")
		return nil
	}

	var owners []*user.User
	for _, su := range sampleUsers {
		hash, err := auth.HashPassword(su.password)
		if err != nil {
			return err
		}
		u, err := users.Create(ctx, &user.User{
			Username: su.username,
			Password: hash,
			Name:     su.name,
			Email:    su.email,
			Role:     su.role,
		})
		if err != nil {
			return fmt.Errorf("create user %s: %w", su.username, err)
		}
		owners = append(owners, u)
		logger.Info("Created user", "username", u.Username, "role", u.Role)
	}

	owner := owners[len(owners)-1]
	now := time.Now()

	for gi, req := range sampleGyms {
		g, err := gym.NewRepository(database).Create(ctx, owner.ID, req)
		if err != nil {
			return fmt.Errorf("create gym %s: %w", req.Name, err)
		}

		plans, err := seedPlans(ctx, database, g.ID)
		if err != nil {
			return err
		}

		phone := "98765" + fmt.Sprintf("%05d", gi)
		_, err = staff.NewRepository(database).Create(ctx, g.ID, staff.CreateStaffRequest{
			Name:     "Head Trainer",
			Email:    fmt.Sprintf("trainer%d@gymdesk.app", g.ID),
			Phone:    &phone,
			Position: "Trainer",
		})
		if err != nil {
			return fmt.Errorf("create staff: %w", err)
		}

		if err := seedMembers(ctx, database, g.ID, plans, now); err != nil {
			return err
		}

		_, err = notification.NewRepository(database).Create(ctx, owner.ID, notification.CreateNotificationRequest{
			Title:   "Welcome",
			Message: fmt.Sprintf("%s is ready to take members.", g.Name),
			Type:    "general",
		})
		if err != nil {
			return fmt.Errorf("create notification: %w", err)
		}
		logger.Info("Seeded gym", "gym", g.Name, "plans", len(plans), "members", len(memberNames))
	}

	logger.Info("Sample data created", "owner", owner.Username)
	return nil
}

func seedPlans(ctx context.Context, database *sqlx.DB, gymID int) ([]*plan.Plan, error) {
	repo := plan.NewRepository(database)
	plans := make([]*plan.Plan, 0, len(planTypes))
	for i, pt := range planTypes {
		price := float64(1000+i*500) * float64(pt.duration)
		desc := fmt.Sprintf("%s membership for %d month(s).", pt.name, pt.duration)
		p, err := repo.Create(ctx, gymID, plan.CreatePlanRequest{
			Name:        fmt.Sprintf("%s %d Month", pt.name, pt.duration),
			Description: &desc,
			Duration:    pt.duration,
			Price:       &price,
			Type:        pt.kind,
		})
		if err != nil {
			return nil, fmt.Errorf("create plan: %w", err)
		}
		plans = append(plans, p)
	}
	return plans, nil
}

// seedMembers gives every member one membership and one payment, spread so
// the dashboard shows revenue in several months and a few expiring rows.
func seedMembers(ctx context.Context, database *sqlx.DB, gymID int, plans []*plan.Plan, now time.Time) error {
	members := member.NewRepository(database)
	memberships := membership.NewRepository(database)
	payments := payment.NewRepository(database)
	methods := []string{"cash", "upi", "card", "bank_transfer"}

	for i, name := range memberNames {
		email := fmt.Sprintf("member%d.%d@example.com", gymID, i)
		m, err := members.Create(ctx, gymID, member.CreateMemberRequest{
			Name:  name,
			Email: &email,
			Phone: fmt.Sprintf("90000%02d%03d", gymID, i),
		})
		if err != nil {
			return fmt.Errorf("create member: %w", err)
		}

		p := plans[i%len(plans)]
		end := now.AddDate(0, 0, 3+i*10)
		start := end.AddDate(0, -p.Duration, 0)
		ms, err := memberships.Create(ctx, m.ID, &membership.Membership{
			PlanID:    p.ID,
			StartDate: start,
			EndDate:   end,
			Status:    membership.StatusActive,
		})
		if err != nil {
			return fmt.Errorf("create membership: %w", err)
		}

		_, err = payments.Create(ctx, m.ID, &payment.Payment{
			MembershipID:  &ms.ID,
			Amount:        p.Price,
			PaymentDate:   start,
			PaymentMethod: methods[i%len(methods)],
			Status:        payment.StatusPaid,
		})
		if err != nil {
			return fmt.Errorf("create payment: %w", err)
		}
	}
	return nil
}
