package query

import (
	"net/url"
	"regexp"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// typeFilters maps the frontend's combined listing-type parameter to the
// (rentOrSale, status) pair it stands for. Unknown values apply no filter.
var typeFilters = map[string][2]string{
	"sellSold":      {"Sale", "Sold"},
	"rentSold":      {"Rent", "Sold"},
	"saleAvailable": {"Sale", "Available"},
	"rentAvailable": {"Rent", "Available"},
}

var (
	propertySearchFields = []string{"title", "houseNo", "block", "pocket", "reference"}
	clientSearchFields   = []string{"clientName", "phoneNumber", "description"}
)

// PropertyFilter is the predicate spec for property listings. Zero-valued
// fields are inactive; active fields are ANDed, with Search expanding into an
// OR group over the fixed text fields.
type PropertyFilter struct {
	RentOrSale string
	Status     string
	BHK        string
	Location   string
	Ownership  string
	MinPrice   *float64
	MaxPrice   *float64
	Search     string
}

type ClientFilter struct {
	Requirement string
	Search      string
}

type Page struct {
	Number int
	Limit  int
}

func (p Page) Skip() int64 {
	return int64((p.Number - 1) * p.Limit)
}

// ParsePropertyQuery translates the raw query string into a filter and page
// spec. The type shorthand wins over direct rentOrSale/status parameters, and
// malformed numeric values are treated as absent.
func ParsePropertyQuery(q url.Values) (PropertyFilter, Page) {
	var f PropertyFilter

	if pair, ok := typeFilters[q.Get("type")]; ok {
		f.RentOrSale = pair[0]
		f.Status = pair[1]
	}
	if v := q.Get("rentOrSale"); v != "" && f.RentOrSale == "" {
		f.RentOrSale = v
	}
	if v := q.Get("status"); v != "" && f.Status == "" {
		f.Status = v
	}
	f.BHK = q.Get("bhk")
	f.Location = q.Get("location")
	f.Ownership = q.Get("ownership")
	f.MinPrice = parsePrice(q.Get("minPrice"))
	f.MaxPrice = parsePrice(q.Get("maxPrice"))

	f.Search = q.Get("searchText")
	if f.Search == "" {
		f.Search = q.Get("search")
	}

	return f, parsePage(q)
}

func ParseClientQuery(q url.Values) (ClientFilter, Page) {
	f := ClientFilter{
		Requirement: q.Get("requirement"),
		Search:      q.Get("search"),
	}
	return f, parsePage(q)
}

// BSON renders the filter as a Mongo query document.
func (f PropertyFilter) BSON() bson.M {
	filter := bson.M{}
	if f.RentOrSale != "" {
		filter["rentOrSale"] = f.RentOrSale
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.BHK != "" {
		filter["bhk"] = f.BHK
	}
	if f.Ownership != "" {
		filter["hpOrFreehold"] = f.Ownership
	}
	if f.Location != "" {
		filter["location"] = regexContains(f.Location)
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		filter["price"] = price
	}
	if f.Search != "" {
		filter["$or"] = searchClauses(propertySearchFields, f.Search)
	}
	return filter
}

func (f ClientFilter) BSON() bson.M {
	filter := bson.M{}
	if f.Requirement != "" {
		filter["requirement"] = f.Requirement
	}
	if f.Search != "" {
		filter["$or"] = searchClauses(clientSearchFields, f.Search)
	}
	return filter
}

func parsePrice(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parsePage(q url.Values) Page {
	p := Page{Number: 1, Limit: DefaultLimit}
	if n, err := strconv.Atoi(q.Get("page")); err == nil && n > 0 {
		p.Number = n
	}
	if l, err := strconv.Atoi(q.Get("limit")); err == nil && l > 0 {
		p.Limit = l
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// regexContains gives substring semantics, so regex metacharacters in user
// input are escaped.
func regexContains(value string) bson.M {
	return bson.M{"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}}
}

func searchClauses(fields []string, term string) bson.A {
	clauses := make(bson.A, 0, len(fields))
	for _, field := range fields {
		clauses = append(clauses, bson.M{field: regexContains(term)})
	}
	return clauses
}
