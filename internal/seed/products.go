// Package seed generates the mock product catalog the storefront is
// demoed and tested against. Generation is driven entirely by the
// caller's *rand.Rand, so a fixed seed reproduces the same catalog.
package seed

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/megamart/commerce-core/internal/app/commerce/domain"
)

// baseProduct is one template a category expands into variants.
type baseProduct struct {
	name      string
	brand     string
	basePrice int64
	image     string
	desc      string
}

// categorySpec shapes the generated products of one category.
type categorySpec struct {
	category       domain.Category
	idPrefix       string
	bases          []baseProduct
	discountChance float64
	maxDiscountPct int
	minDiscountPct int
	ratingFloor    float64
	ratingSpread   float64
	minReviews     int
	maxReviews     int
	stockChance    float64
	features       []string
	variants       []string
}

// Catalog generates count products per category from the fixed base
// tables. Prices are integer minor-unit amounts; a discounted product
// keeps its base price as OriginalPrice.
func Catalog(r *rand.Rand, count int) []domain.Product {
	specs := categorySpecs()
	out := make([]domain.Product, 0, count*len(specs))
	for _, spec := range specs {
		for i := 0; i < count; i++ {
			out = append(out, generate(r, spec, i))
		}
	}
	return out
}

func generate(r *rand.Rand, spec categorySpec, i int) domain.Product {
	base := spec.bases[i%len(spec.bases)]

	price := base.basePrice
	var originalPrice int64
	if r.Float64() < spec.discountChance {
		pct := spec.minDiscountPct + r.Intn(spec.maxDiscountPct-spec.minDiscountPct+1)
		originalPrice = base.basePrice
		price = base.basePrice * int64(100-pct) / 100
	}

	name := base.name
	if i >= len(spec.bases) {
		name = fmt.Sprintf("%s (%s)", base.name, spec.variants[r.Intn(len(spec.variants))])
	}

	rating := spec.ratingFloor + r.Float64()*spec.ratingSpread
	rating = math.Round(rating*10) / 10

	return domain.Product{
		ID:            fmt.Sprintf("%s-%d", spec.idPrefix, i+1),
		Name:          name,
		Description:   base.desc,
		Price:         price,
		OriginalPrice: originalPrice,
		Images:        []string{base.image},
		Category:      spec.category,
		Brand:         base.brand,
		Rating:        rating,
		Reviews:       spec.minReviews + r.Intn(spec.maxReviews-spec.minReviews+1),
		InStock:       r.Float64() < spec.stockChance,
		Features:      append([]string(nil), spec.features...),
	}
}

func categorySpecs() []categorySpec {
	return []categorySpec{
		{
			category: domain.CategoryElectronics,
			idPrefix: "electronics",
			bases: []baseProduct{
				{"iPhone 14 Pro Max", "Apple", 129999, img("1511707171634-5f897ff02aa9"), "Latest iPhone with Pro cameras and A16 Bionic chip"},
				{"Samsung Galaxy S23 Ultra", "Samsung", 124999, img("1510557880182-3d4d3b5d8f1b"), "Premium Android smartphone with S Pen and amazing cameras"},
				{"MacBook Pro M2", "Apple", 199999, img("1517336714731-489689fd1ca8"), "Professional laptop with M2 chip and Liquid Retina XDR display"},
				{"Sony WH-1000XM5", "Sony", 29999, img("1518444023764-6d9f8d5d3b9b"), "Industry-leading noise cancellation headphones"},
				{"Nintendo Switch OLED", "Nintendo", 34999, img("1606144042614-b2417e99c4e3"), "Gaming console with vibrant OLED screen"},
				{"AirPods Pro 2nd Gen", "Apple", 24999, img("1600294037681-c80b4cb5b434"), "Premium wireless earbuds with active noise cancellation"},
				{"PlayStation 5", "Sony", 49999, img("1606813907291-d86efa9b94db"), "Next-gen gaming console with ray tracing"},
				{"Google Pixel 7 Pro", "Google", 84999, img("1511707171634-5f897ff02aa9"), "Android phone with computational photography"},
				{"Kindle Oasis", "Amazon", 21999, img("1481516336974-efac2be86c62"), "Premium e-reader with adjustable warm light"},
				{"Echo Dot 5th Gen", "Amazon", 4999, img("1543512214-318c7553f230"), "Smart speaker with Alexa voice assistant"},
			},
			discountChance: 0.3,
			minDiscountPct: 10,
			maxDiscountPct: 39,
			ratingFloor:    3.5,
			ratingSpread:   1.5,
			minReviews:     100,
			maxReviews:     5099,
			stockChance:    0.9,
			features:       []string{"Latest Technology", "Premium Quality", "Fast Performance", "Great Value"},
			variants:       []string{"128GB", "256GB", "512GB", "1TB", "Pro"},
		},
		{
			category: domain.CategoryFashion,
			idPrefix: "fashion",
			bases: []baseProduct{
				{"Nike Air Max 270", "Nike", 12999, img("1542291026-7eec264c27ff"), "Comfortable running shoes with Air cushioning"},
				{"Adidas Ultraboost", "Adidas", 17999, img("1542291026-7eec264c27ff"), "Premium running shoes with Boost technology"},
				{"Levi's 501 Original", "Levis", 4999, img("1489987707025-afc232f7ea0f"), "Classic straight fit jeans"},
				{"Ray-Ban Wayfarer", "Ray-Ban", 8999, img("1511367461989-f85a21fda167"), "Iconic sunglasses with UV protection"},
				{"Gucci Belt", "Gucci", 45999, img("1553062407-98eeb64c6a62"), "Luxury leather belt with signature buckle"},
				{"Converse Chuck Taylor", "Converse", 4999, img("1521572163474-6864f9cf17ab"), "Classic canvas sneakers"},
				{"Tommy Hilfiger Polo", "Tommy Hilfiger", 3999, img("1586790170083-2f9ceadc732d"), "Premium polo shirt with logo"},
				{"Fossil Watch", "Fossil", 8999, img("1522312346375-d1a52e2b99b3"), "Stylish analog wristwatch"},
				{"Vans Old Skool", "Vans", 5499, img("1552346154-21d32810aba3"), "Classic skateboard shoes"},
				{"Champion Sweatshirt", "Champion", 3499, img("1556821840-3a9c6fee2856"), "Comfortable fleece sweatshirt"},
			},
			discountChance: 0.4,
			minDiscountPct: 10,
			maxDiscountPct: 49,
			ratingFloor:    3.8,
			ratingSpread:   1.2,
			minReviews:     50,
			maxReviews:     3049,
			stockChance:    0.85,
			features:       []string{"Premium Quality", "Comfortable Fit", "Durable Material", "Trendy Design"},
			variants:       []string{"S", "M", "L", "XL", "XXL"},
		},
		{
			category: domain.CategoryHomeGarden,
			idPrefix: "home",
			bases: []baseProduct{
				{"IKEA Sofa Set", "IKEA", 45999, img("1549187774-b4b0a34a3d6c"), "Modern 3-seater sofa with cushions"},
				{"Philips Air Fryer", "Philips", 12999, img("1590736969955-71cc94901144"), "Healthy cooking with hot air technology"},
				{"Instant Pot Pressure Cooker", "Instant Pot", 8999, img("1585515656971-f7ad1dd13f25"), "Multi-functional electric pressure cooker"},
				{"Dyson V11 Vacuum", "Dyson", 34999, img("1558618666-fcd25c85cd64"), "Cordless vacuum with powerful suction"},
				{"KitchenAid Stand Mixer", "KitchenAid", 39999, img("1578662996442-48f60103fc96"), "Professional stand mixer for baking"},
				{"Nespresso Coffee Machine", "Nespresso", 18999, img("1572630578177-65de0c5f89fb"), "Premium espresso coffee maker"},
				{"Philips Hue Smart Bulbs", "Philips", 3999, img("1558618047-cfa2ee395188"), "Color-changing smart LED bulbs"},
				{"Roomba Robot Vacuum", "iRobot", 54999, img("1582719478188-2b9a3d0e1cce"), "Self-navigating robot vacuum"},
				{"Le Creuset Dutch Oven", "Le Creuset", 24999, img("1556909114-f6e7ad7d3136"), "Cast iron cooking pot with enamel"},
				{"Keurig Coffee Maker", "Keurig", 9999, img("1572630578177-65de0c5f89fb"), "Single-serve coffee brewing system"},
			},
			discountChance: 0.35,
			minDiscountPct: 10,
			maxDiscountPct: 39,
			ratingFloor:    3.6,
			ratingSpread:   1.4,
			minReviews:     40,
			maxReviews:     2539,
			stockChance:    0.88,
			features:       []string{"Premium Quality", "Easy to Use", "Durable Build", "Great Value"},
			variants:       []string{"White", "Black", "Steel", "Red", "Blue"},
		},
		{
			category: domain.CategorySports,
			idPrefix: "sports",
			bases: []baseProduct{
				{"Nike Air Zoom Pegasus", "Nike", 10999, img("1542291026-7eec264c27ff"), "Responsive running shoes for daily training"},
				{"Wilson Tennis Racket", "Wilson", 8999, img("1554068865-24cecd4e34b8"), "Tournament-grade tennis racket"},
				{"Spalding Basketball", "Spalding", 3999, img("1546519638-68e109498ffc"), "Official size composite basketball"},
				{"Manduka Yoga Mat", "Manduka", 4999, img("1544367567-0f2fcb009e0b"), "Non-slip professional yoga mat"},
				{"PowerBlock Dumbbells", "PowerBlock", 24999, img("1571019613454-1cb2f99b2d8b"), "Adjustable dumbbell set for home gyms"},
				{"Garmin Forerunner Watch", "Garmin", 34999, img("1579952363873-27d3bfad9c0d"), "GPS running watch with training metrics"},
				{"Peloton Exercise Bike", "Peloton", 149999, img("1534258936925-c58bed479fcb"), "Connected indoor cycling bike"},
				{"Boxing Gloves", "Everlast", 4999, img("1549719386-74dfcbf7dbed"), "Padded training gloves for sparring"},
				{"Skateboard Complete", "Element", 8999, img("1547447134-cd3f5c716030"), "Complete skateboard ready to ride"},
				{"Resistance Bands", "Bodylastics", 2999, img("1571019614242-c5c5dee9f50b"), "Stackable resistance band set"},
			},
			discountChance: 0.3,
			minDiscountPct: 10,
			maxDiscountPct: 34,
			ratingFloor:    3.7,
			ratingSpread:   1.3,
			minReviews:     30,
			maxReviews:     2029,
			stockChance:    0.87,
			features:       []string{"Professional Grade", "Durable Build", "High Performance", "Great Value"},
			variants:       []string{"Standard", "Pro", "Elite", "Youth", "Team"},
		},
		{
			category: domain.CategoryBooks,
			idPrefix: "books",
			bases: []baseProduct{
				{"Atomic Habits", "Penguin Random House", 599, img("1544947950-fa07a98d237f"), "Tiny changes, remarkable results"},
				{"Harry Potter Complete Series", "Bloomsbury", 4999, img("1618365908648-e71bd5716cba"), "All seven novels in a boxed set"},
				{"The Alchemist", "HarperCollins", 399, img("1544947950-fa07a98d237f"), "Paulo Coelho's fable about following your dream"},
				{"Sapiens", "Harper", 799, img("1589998059171-988d887df646"), "A brief history of humankind"},
				{"Zero to One", "Crown Business", 649, img("1507842217343-583bb7270b66"), "Notes on startups and building the future"},
				{"The Lean Startup", "Crown Business", 599, img("1507842217343-583bb7270b66"), "Continuous innovation for modern companies"},
				{"The Power of Now", "New World Library", 499, img("1506880018603-83d5b814b5a6"), "A guide to spiritual enlightenment"},
				{"How to Win Friends", "Pocket Books", 449, img("1507842217343-583bb7270b66"), "Dale Carnegie people skills classic"},
				{"Educated", "Random House", 699, img("1589998059171-988d887df646"), "A memoir about the transformative power of education"},
				{"Ikigai", "Hutchinson", 399, img("1506880018603-83d5b814b5a6"), "The Japanese secret to a long and happy life"},
			},
			discountChance: 0.25,
			minDiscountPct: 5,
			maxDiscountPct: 29,
			ratingFloor:    4.0,
			ratingSpread:   1.0,
			minReviews:     200,
			maxReviews:     10199,
			stockChance:    0.95,
			features:       []string{"Bestseller", "Expert Author", "High Quality Print", "Great Value"},
			variants:       []string{"Paperback", "Hardcover", "Deluxe Edition", "Collector's Edition", "Illustrated"},
		},
		{
			category: domain.CategoryToys,
			idPrefix: "toys",
			bases: []baseProduct{
				{"LEGO Creator Expert", "LEGO", 8999, img("1585366119957-e9730b6d0f60"), "Advanced building set for enthusiasts"},
				{"Barbie Dreamhouse", "Mattel", 12999, img("1558060370-d644479cb6f7"), "Three-story dollhouse with elevator"},
				{"Hot Wheels Track Set", "Mattel", 3999, img("1594787318286-3d835c1d207f"), "Loop track set with two cars"},
				{"Nerf Elite Blaster", "Hasbro", 2999, img("1563901935883-cb61f5d49be4"), "Foam dart blaster with 12-dart clip"},
				{"Monopoly Board Game", "Hasbro", 2499, img("1611371805429-8b5c1b2c34ba"), "The classic property trading game"},
				{"UNO Card Game", "Mattel Games", 299, img("1611371805429-8b5c1b2c34ba"), "The classic card game of matching colors"},
				{"Remote Control Drone", "Syma", 5999, img("1473968512647-3e447244af8f"), "Camera drone with altitude hold"},
				{"Rubiks Cube 3x3", "Rubiks", 899, img("1591991731833-b4807cf7ef94"), "The original twisting puzzle"},
				{"Teddy Bear Plush", "Build-A-Bear", 1999, img("1559454403-b8fb88521f11"), "Soft plush bear for all ages"},
				{"Chess Set Wooden", "House of Chess", 2999, img("1528819622765-d6bcf132f793"), "Handcrafted wooden chess set"},
			},
			discountChance: 0.3,
			minDiscountPct: 10,
			maxDiscountPct: 39,
			ratingFloor:    3.9,
			ratingSpread:   1.1,
			minReviews:     60,
			maxReviews:     4059,
			stockChance:    0.9,
			features:       []string{"Safe Materials", "Educational Value", "Fun & Engaging", "Age Appropriate"},
			variants:       []string{"Mini", "Classic", "Deluxe", "Travel", "Giant"},
		},
	}
}

func img(id string) string {
	return "https://images.unsplash.com/photo-" + id + "?q=80&w=1200"
}
