package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"sillah/internal/advisor"
	"sillah/internal/booking"
	"sillah/internal/family"
	"sillah/internal/logs"
	"sillah/internal/message"
	"sillah/internal/metrics"
	"sillah/internal/risk"
)

type eventSpec struct {
	condition   string
	age         int
	description string
}

type memberSpec struct {
	relation  string
	age       int
	condition string // single-condition form when set
	events    []eventSpec
}

var scenarios = map[string][]memberSpec{
	"original": {
		{relation: "Father", age: 55, condition: "SCD", events: []eventSpec{{"Hypertension", 50, "Mild blood pressure increase"}}},
		{relation: "Brother", age: 30, events: []eventSpec{{"Healthy", 0, "No recorded conditions"}}},
	},
	"high-risk": {
		{relation: "Father", age: 55, events: []eventSpec{{"SCD", 45, ""}}},
		{relation: "Brother", age: 30, events: []eventSpec{{"SCD", 30, ""}}},
		{relation: "Mother", age: 50, events: []eventSpec{{"Healthy", 0, "No recorded conditions"}}},
	},
	"no-risk": {
		{relation: "Father", age: 55, events: []eventSpec{{"Healthy", 0, "No recorded conditions"}}},
		{relation: "Brother", age: 30, events: []eventSpec{{"Healthy", 0, "No recorded conditions"}}},
	},
}

func main() {
	var (
		langFlag     = flag.String("lang", "en", "output language: en or ar")
		name         = flag.String("name", "Shoug Alomran", "user name")
		scenarioFlag = flag.String("scenario", "original", "family scenario: "+strings.Join(scenarioNames(), ", "))
		book         = flag.Bool("book", false, "book an appointment at the recommended clinic, or the default one")
	)
	flag.Parse()

	lang, err := message.ParseLang(*langFlag)
	if err != nil {
		log.Fatal(err)
	}
	members, ok := scenarios[*scenarioFlag]
	if !ok {
		log.Fatalf("unknown scenario %q", *scenarioFlag)
	}

	logger := logs.NewLogger(100, logs.INFO, logs.NewSink("warn"))
	adv := advisor.NewAdvisor(
		risk.NewEvaluator(risk.DefaultCriteria()),
		booking.NewService(logger, nil),
		logger,
		metrics.NewRegistry(),
		booking.RiyadhHeartCenter,
	)

	user, err := buildUser(*name, members)
	if err != nil {
		log.Fatalf("invalid scenario: %v", err)
	}

	if err := run(os.Stdout, adv, user, message.New(lang), *book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run prints the advisory for user. Nothing is booked unless book is set.
func run(w io.Writer, adv *advisor.Advisor, user *family.User, msg *message.Catalog, book bool) error {
	fmt.Fprintln(w, msg.Title())

	advisory := adv.Advise(user, msg.Lang())
	fmt.Fprintln(w, advisory.Message)

	clinicName := ""
	if advisory.RecommendedClinic != nil {
		clinicName = advisory.RecommendedClinic.Name
		fmt.Fprintln(w, msg.RecommendedClinic()+clinicName)
	}

	if book {
		appt, err := adv.Book(user, clinicName)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, msg.AppointmentBooked(appt.UserName, appt.Clinic.Name))
	}

	fmt.Fprintln(w, msg.End())
	return nil
}

func buildUser(name string, specs []memberSpec) (*family.User, error) {
	user, err := family.NewUser(name)
	if err != nil {
		return nil, err
	}

	for _, s := range specs {
		var m *family.FamilyMember
		if s.condition != "" {
			m, err = family.NewFamilyMemberWithCondition(s.relation, s.age, s.condition)
		} else {
			m, err = family.NewFamilyMember(s.relation, s.age)
		}
		if err != nil {
			return nil, err
		}

		for _, e := range s.events {
			event, err := family.NewHealthEvent(e.condition, e.age, e.description)
			if err != nil {
				return nil, err
			}
			if err := m.AddHealthEvent(event); err != nil {
				return nil, err
			}
		}

		if err := user.AddFamilyMember(m); err != nil {
			return nil, err
		}
	}
	return user, nil
}

func scenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for n := range scenarios {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
