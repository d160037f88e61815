package seed

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"time"

	"pieforproviders/app/database"
	"pieforproviders/app/models"
	"pieforproviders/app/routes/auth"
)

// Options tune the randomized parts of a seeding run. A fixed RandSeed makes
// the run reproducible.
type Options struct {
	PercentOnWeekends float64
	SkipAllWeekends   bool
	RandSeed          int64
}

// DefaultOptions matches the historical seeding behavior: roughly one weekend
// day in ten is attended.
func DefaultOptions() Options {
	return Options{
		PercentOnWeekends: 0.10,
		RandSeed:          time.Now().UnixNano(),
	}
}

const earliestCheckinHour = 7

// Run seeds the database with demo data in strict dependency order: lookups,
// then the test user, children, businesses and sites, enrollments, agencies,
// payments, subsidy rules, case cycles, allowances, and finally attendance.
// Every step is find-or-create so repeated runs do not duplicate rows. Any
// error aborts the run; there is no partial-failure recovery because this
// never runs against production data.
func Run(db *sql.DB, opts Options) error {
	fmt.Println("Seeding.......")
	rng := rand.New(rand.NewSource(opts.RandSeed))

	now := time.Now()
	thisYear := now.Year()
	jan1 := time.Date(thisYear, 1, 1, 0, 0, 0, 0, time.Local)
	mar31 := time.Date(thisYear, 3, 31, 0, 0, 0, 0, time.Local)
	apr1 := time.Date(thisYear, 4, 1, 0, 0, 0, 0, time.Local)
	jun30 := time.Date(thisYear, 6, 30, 0, 0, 0, 0, time.Local)

	// Lookups
	montana, err := database.FindOrCreateState(db, "Montana", "MT")
	if err != nil {
		return err
	}
	bigHornMT, err := database.FindOrCreateCounty(db, montana.ID, "Big Horn")
	if err != nil {
		return err
	}
	hardinMT, err := database.FindOrCreateCity(db, montana.ID, bigHornMT.ID, "Hardin")
	if err != nil {
		return err
	}
	hardinZip, err := RandomZipcodeOrCreate(db, hardinMT, rng)
	if err != nil {
		return err
	}

	wisconsin, err := database.FindOrCreateState(db, "Wisconsin", "WI")
	if err != nil {
		return err
	}
	vilasWI, err := database.FindOrCreateCounty(db, wisconsin.ID, "Vilas")
	if err != nil {
		return err
	}
	lacDuFlambeau, err := database.FindOrCreateCity(db, wisconsin.ID, vilasWI.ID, "Lac Du Flambeau")
	if err != nil {
		return err
	}
	lacDuFlambeauZip, err := RandomZipcodeOrCreate(db, lacDuFlambeau, rng)
	if err != nil {
		return err
	}

	walworthWI, err := database.FindOrCreateCounty(db, wisconsin.ID, "Walworth")
	if err != nil {
		return err
	}
	elkhornWI, err := database.FindOrCreateCity(db, wisconsin.ID, walworthWI.ID, "Walworth")
	if err != nil {
		return err
	}
	elkhornZip, err := RandomZipcodeOrCreate(db, elkhornWI, rng)
	if err != nil {
		return err
	}

	illinois, err := database.FindOrCreateState(db, "Illinois", "IL")
	if err != nil {
		return err
	}
	massachusetts, err := database.FindOrCreateState(db, "Massachusetts", "MA")
	if err != nil {
		return err
	}

	printRecordCount(db, "lookup_states")
	printRecordCount(db, "lookup_counties")
	printRecordCount(db, "lookup_cities")
	printRecordCount(db, "lookup_zipcodes")

	// Test user
	password, err := auth.HashPassword(envOr("TESTUSER_PASS", "testpass1234!"))
	if err != nil {
		return fmt.Errorf("failed to hash test user password: %v", err)
	}
	kate, err := database.FindOrCreateUser(db, &models.User{
		Email:                    envOr("TESTUSER_EMAIL", "test@test.com"),
		Password:                 password,
		FullName:                 "Kate Donaldson",
		GreetingName:             "Kate",
		Organization:             "Pie for Providers",
		Language:                 "english",
		PhoneNumber:              "8888888888",
		PhoneType:                models.PhoneCell,
		Timezone:                 "Central Time (US & Canada)",
		OptInEmail:               true,
		OptInText:                true,
		ServiceAgreementAccepted: true,
		IsActive:                 true,
	})
	if err != nil {
		return err
	}
	if err := database.ConfirmUser(db, kate.ID); err != nil {
		return err
	}
	printRecordCount(db, "users")

	// Children
	maria, err := childNamed(db, kate, "Maria Baca", rng)
	if err != nil {
		return err
	}
	kshawn, err := childNamed(db, kate, "K'Shawn Henderson", rng)
	if err != nil {
		return err
	}
	marcus, err := childNamed(db, kate, "Marcus Smith", rng)
	if err != nil {
		return err
	}
	if _, err := childNamed(db, kate, "Sabina Akers", rng); err != nil {
		return err
	}
	mubiru, err := childNamed(db, kate, "Mubiru Karstensen", rng)
	if err != nil {
		return err
	}
	if _, err := childNamed(db, kate, "Tarquinius Kelly", rng); err != nil {
		return err
	}
	printRecordCount(db, "children")

	// Businesses and sites
	business, err := database.FindOrCreateBusiness(db, &models.Business{
		UserID:      kate.ID,
		Name:        "Happy Seedlings Childcare",
		LicenseType: models.LicenseTypes[0],
		IsActive:    true,
	})
	if err != nil {
		return err
	}
	printRecordCount(db, "businesses")

	qris := 3
	prairieCenter, err := database.FindOrCreateSite(db, &models.Site{
		BusinessID: business.ID,
		Name:       "Prairie Center",
		Address:    "8238 Rhinebeck Dr",
		CityID:     &hardinMT.ID,
		CountyID:   &bigHornMT.ID,
		StateID:    &montana.ID,
		ZipcodeID:  &hardinZip.ID,
		IsActive:   true,
	})
	if err != nil {
		return err
	}
	littleOaks, err := database.FindOrCreateSite(db, &models.Site{
		BusinessID: business.ID,
		Name:       "Little Oaks Growing Center",
		Address:    "8201 1st Street",
		CityID:     &lacDuFlambeau.ID,
		CountyID:   &vilasWI.ID,
		StateID:    &wisconsin.ID,
		ZipcodeID:  &lacDuFlambeauZip.ID,
		QrisRating: &qris,
		IsActive:   true,
	})
	if err != nil {
		return err
	}
	littleSprouts, err := database.FindOrCreateSite(db, &models.Site{
		BusinessID: business.ID,
		Name:       "Little Sprouts Growing Center",
		Address:    "123 Bighorn Lane",
		CityID:     &elkhornWI.ID,
		CountyID:   &walworthWI.ID,
		StateID:    &wisconsin.ID,
		ZipcodeID:  &elkhornZip.ID,
		QrisRating: &qris,
		IsActive:   true,
	})
	if err != nil {
		return err
	}
	printRecordCount(db, "sites")

	// Enrollments
	// TODO: make sure that care did not start before a child was born.
	mariaAtPrairie, err := database.FindOrCreateChildSite(db, &models.ChildSite{
		ChildID: maria.ID, SiteID: prairieCenter.ID,
		StartedCare: time.Date(thisYear-1, 6, 13, 0, 0, 0, 0, time.Local),
	})
	if err != nil {
		return err
	}
	kshawnAtPrairie, err := database.FindOrCreateChildSite(db, &models.ChildSite{
		ChildID: kshawn.ID, SiteID: prairieCenter.ID,
		StartedCare: time.Date(thisYear-1, 12, 12, 0, 0, 0, 0, time.Local),
	})
	if err != nil {
		return err
	}
	if _, err := database.FindOrCreateChildSite(db, &models.ChildSite{
		ChildID: marcus.ID, SiteID: prairieCenter.ID,
		StartedCare: time.Date(thisYear-1, 12, 18, 0, 0, 0, 0, time.Local),
	}); err != nil {
		return err
	}
	mubiruAtPrairie, err := database.FindOrCreateChildSite(db, &models.ChildSite{
		ChildID: mubiru.ID, SiteID: prairieCenter.ID,
		StartedCare: time.Date(thisYear, 4, 18, 0, 0, 0, 0, time.Local),
	})
	if err != nil {
		return err
	}
	printRecordCount(db, "child_sites")

	// Agencies
	agencyWI, err := database.FindOrCreateAgency(db, &models.Agency{
		StateID: wisconsin.ID, Name: "Wisconsin Children's Services", IsActive: true,
	})
	if err != nil {
		return err
	}
	if _, err := database.FindOrCreateAgency(db, &models.Agency{
		StateID: illinois.ID, Name: "Community Child Care Connection", IsActive: true,
	}); err != nil {
		return err
	}
	if _, err := database.FindOrCreateAgency(db, &models.Agency{
		StateID: massachusetts.ID, Name: "Children's Aid and Family Services", IsActive: true,
	}); err != nil {
		return err
	}
	printRecordCount(db, "agencies")

	// Payments
	aug1 := time.Date(thisYear, 8, 1, 0, 0, 0, 0, time.Local)
	aug10 := time.Date(thisYear, 8, 10, 0, 0, 0, 0, time.Local)
	may15 := time.Date(thisYear, 5, 15, 0, 0, 0, 0, time.Local)

	payments := []*models.Payment{
		{AgencyID: agencyWI.ID, SiteID: littleOaks.ID, PaidOn: aug1,
			CareStartedOn: jan1, CareFinishedOn: mar31,
			AmountCents: 85_000, DiscrepancyCents: 25_000},
		{AgencyID: agencyWI.ID, SiteID: littleSprouts.ID, PaidOn: aug1,
			CareStartedOn: jan1, CareFinishedOn: mar31,
			AmountCents: 100_000, DiscrepancyCents: 0},
		{AgencyID: agencyWI.ID, SiteID: littleSprouts.ID, PaidOn: aug10,
			CareStartedOn: jan1, CareFinishedOn: may15,
			AmountCents: 140_000, DiscrepancyCents: 2_750},
	}
	for _, p := range payments {
		if _, err := database.FindOrCreatePayment(db, p); err != nil {
			return err
		}
	}
	printRecordCount(db, "payments")

	// Subsidy rules
	cookIL, err := database.FindOrCreateCounty(db, illinois.ID, "Cook")
	if err != nil {
		return err
	}
	rule1, err := database.FindOrCreateSubsidyRule(db, &models.SubsidyRule{
		Name:                    "Rule 1",
		StateID:                 illinois.ID,
		CountyID:                cookIL.ID,
		LicenseType:             models.LicenseTypes[rng.Intn(len(models.LicenseTypes))],
		MaxAge:                  18,
		PartDayRateCents:        1_800,
		FullDayRateCents:        3_200,
		PartDayMaxHours:         5,
		FullDayMaxHours:         12,
		FullPlusPartDayMaxHours: 18,
		FullPlusFullDayMaxHours: 24,
		PartDayThreshold:        5,
		FullDayThreshold:        6,
		QrisRating:              "3",
	})
	if err != nil {
		return err
	}
	printRecordCount(db, "subsidy_rules")

	// Case cycles
	q1Cycle, err := database.FindOrCreateCaseCycle(db, &models.CaseCycle{
		UserID:         kate.ID,
		Status:         models.CaseCycleSubmitted,
		CopayCents:     1_000,
		CopayFrequency: models.CopayWeekly,
		EffectiveOn:    jan1,
		ExpiresOn:      time.Date(thisYear, 3, 30, 0, 0, 0, 0, time.Local),
		SubmittedOn:    time.Date(thisYear, 5, 12, 0, 0, 0, 0, time.Local),
	})
	if err != nil {
		return err
	}
	q2Cycle, err := database.FindOrCreateCaseCycle(db, &models.CaseCycle{
		UserID:         kate.ID,
		Status:         models.CaseCycleSubmitted,
		CopayCents:     1_000,
		CopayFrequency: models.CopayWeekly,
		EffectiveOn:    apr1,
		ExpiresOn:      jun30,
		SubmittedOn:    time.Date(thisYear, 7, 15, 0, 0, 0, 0, time.Local),
	})
	if err != nil {
		return err
	}
	printRecordCount(db, "case_cycles")

	// Allowances
	q1Kids := []*models.Child{maria, kshawn, marcus}
	q2Kids := []*models.Child{maria, kshawn, marcus, mubiru}
	for _, kid := range q1Kids {
		if _, err := database.FindOrCreateChildCaseCycle(db, &models.ChildCaseCycle{
			ChildID: kid.ID, CaseCycleID: q1Cycle.ID, SubsidyRuleID: rule1.ID,
			PartDaysAllowed: 89, FullDaysAllowed: 89,
		}); err != nil {
			return err
		}
	}
	for _, kid := range q2Kids {
		if _, err := database.FindOrCreateChildCaseCycle(db, &models.ChildCaseCycle{
			ChildID: kid.ID, CaseCycleID: q2Cycle.ID, SubsidyRuleID: rule1.ID,
			PartDaysAllowed: 90, FullDaysAllowed: 90,
		}); err != nil {
			return err
		}
	}

	// Attendance
	fmt.Println(" Now creating attendance records...")

	type attendancePlan struct {
		enrollment *models.ChildSite
		child      *models.Child
		cycle      *models.CaseCycle
		rangeStart time.Time
		rangeEnd   time.Time
	}
	plans := []attendancePlan{
		{mariaAtPrairie, maria, q1Cycle, jan1, mar31},
		{kshawnAtPrairie, kshawn, q1Cycle, jan1, mar31},
		{mariaAtPrairie, maria, q2Cycle, apr1, jun30},
		{kshawnAtPrairie, kshawn, q2Cycle, apr1, jun30},
		{mubiruAtPrairie, mubiru, q2Cycle, apr1, jun30},
	}
	for _, plan := range plans {
		allowance, err := database.GetChildCaseCycle(db, plan.child.ID, plan.cycle.ID)
		if err != nil {
			return fmt.Errorf("failed to find allowance for %s: %v", plan.child.FullName, err)
		}
		firstDate := latestDate(plan.enrollment.StartedCare, plan.rangeStart)
		lastDate := latestDateOpt(plan.enrollment.EndedCare, plan.rangeEnd)
		if err := MakeAttendance(db, plan.enrollment, allowance,
			firstDate, lastDate, earliestCheckinHour,
			opts.PercentOnWeekends, opts.SkipAllWeekends, rng); err != nil {
			return err
		}
	}
	printRecordCount(db, "attendances")

	fmt.Println("Seeding is done!")
	return nil
}

// childNamed finds or creates one of the user's children, picking a birthday
// uniformly between 14 years and 2 weeks ago.
func childNamed(db *sql.DB, user *models.User, fullName string, rng *rand.Rand) (*models.Child, error) {
	maxBirthday := time.Now().AddDate(-14, 0, 0)
	minBirthday := time.Now().AddDate(0, 0, -14)
	span := minBirthday.Sub(maxBirthday)
	dob := maxBirthday.Add(time.Duration(rng.Int63n(int64(span))))

	return database.FindOrCreateChild(db, &models.Child{
		UserID:      user.ID,
		FullName:    fullName,
		DateOfBirth: truncateToDay(dob),
	})
}

func latestDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func latestDateOpt(a *time.Time, b time.Time) time.Time {
	if a == nil {
		return b
	}
	return latestDate(*a, b)
}

func printRecordCount(db *sql.DB, table string) {
	count, err := database.CountRows(db, table)
	if err != nil {
		fmt.Printf(" ... could not count %s: %v\n", table, err)
		return
	}
	fmt.Printf(" ... %d %s now in the db\n", count, table)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
