package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyFromPath(t *testing.T) {
	assert.Equal(t, "ListingSubmission/1.0.0", generateKeyFromPath("documents/listing-submission/v1.json"))
	assert.Equal(t, "Listing/2.0.0", generateKeyFromPath("documents/listing/v2.json"))
	assert.Equal(t, "", generateKeyFromPath("documents/v1.json"))
}

func TestSchemasRegistered(t *testing.T) {
	assert.Contains(t, compiledSchemas, "Listing/1.0.0")
	assert.Contains(t, compiledSchemas, "ListingSubmission/1.0.0")
}

const validSubmission = `{
	"brand": "Toyota", "model": "Corolla", "year": 2020, "price": 70000, "mileage": 50000,
	"engine": "1.6", "transmission": "Automatic", "fuelType": "Gasoline", "color": "White",
	"location": "Ramallah", "sellerPhone": "0599123456", "images": ["a.jpg"]
}`

func TestValidateDocument_Submission(t *testing.T) {
	require.NoError(t, ValidateDocument(ListingSubmissionDocument, DocumentVersionV1, []byte(validSubmission)))

	testCases := map[string]string{
		"short phone": `{"brand":"Toyota","model":"Corolla","year":2020,"price":1,"mileage":1,"engine":"1.6",
			"transmission":"Manual","fuelType":"Diesel","color":"Red","location":"Jenin","sellerPhone":"059","images":["a"]}`,
		"no images": `{"brand":"Toyota","model":"Corolla","year":2020,"price":1,"mileage":1,"engine":"1.6",
			"transmission":"Manual","fuelType":"Diesel","color":"Red","location":"Jenin","sellerPhone":"0599123456","images":[]}`,
		"too many images": `{"brand":"Toyota","model":"Corolla","year":2020,"price":1,"mileage":1,"engine":"1.6",
			"transmission":"Manual","fuelType":"Diesel","color":"Red","location":"Jenin","sellerPhone":"0599123456",
			"images":["1","2","3","4","5","6","7"]}`,
		"missing brand": `{"model":"Corolla","year":2020,"price":1,"mileage":1,"engine":"1.6",
			"transmission":"Manual","fuelType":"Diesel","color":"Red","location":"Jenin","sellerPhone":"0599123456","images":["a"]}`,
		"negative price": `{"brand":"Toyota","model":"Corolla","year":2020,"price":-5,"mileage":1,"engine":"1.6",
			"transmission":"Manual","fuelType":"Diesel","color":"Red","location":"Jenin","sellerPhone":"0599123456","images":["a"]}`,
	}
	for name, body := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, ValidateDocument(ListingSubmissionDocument, DocumentVersionV1, []byte(body)))
		})
	}
}

func TestValidateDocument_Errors(t *testing.T) {
	err := ValidateDocument("Unknown", DocumentVersionV1, []byte(`{}`))
	assert.ErrorContains(t, err, "not found")

	err = ValidateDocument(ListingSubmissionDocument, DocumentVersionV1, []byte(`{`))
	assert.ErrorContains(t, err, "not a valid JSON")
}

func TestValidateValue_Listing(t *testing.T) {
	listing := map[string]interface{}{
		"id": "x1", "name": "Kia Rio", "brand": "Kia", "model": "Rio", "year": 2018,
		"price": 40000, "mileage": 90000, "fuelType": "Gasoline", "transmission": "Manual",
		"condition": "Used", "location": "Tubas", "description": "", "images": []string{"r.jpg"},
		"sellerId": "s1", "sellerName": "Omar", "sellerPhone": "+970 59 111 2222",
		"createdAt": "2024-02-01T10:00:00Z",
	}
	require.NoError(t, ValidateValue(ListingDocument, DocumentVersionV1, listing))

	listing["location"] = "Tel Aviv"
	assert.Error(t, ValidateValue(ListingDocument, DocumentVersionV1, listing))

	listing["location"] = "Tubas"
	listing["createdAt"] = "yesterday"
	assert.Error(t, ValidateValue(ListingDocument, DocumentVersionV1, listing))
}
