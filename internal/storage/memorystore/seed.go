package memorystore

import (
	"time"

	"github.com/light-bringer/artisan-storefront/internal/app/store/domain"
)

// SeedProducts returns the fixed startup catalog. Rating and reviewCount
// carry the storefront's historical display values until the first review
// submission recomputes them from stored reviews.
func SeedProducts() []*domain.Product {
	return []*domain.Product{
		{
			ID:            "prod-1",
			Name:          "Rustic Ceramic Bowl Set",
			Description:   "Handcrafted ceramic bowls with a beautiful rustic glaze. Perfect for serving or decoration. Each piece is unique and made with care by local artisans.",
			Price:         domain.FromCents(4500),
			OriginalPrice: domain.FromCents(5500),
			Image:         "/assets/products/rustic-ceramic-bowl-set.jpg",
			Category:      "Pottery",
			Rating:        4.8,
			ReviewCount:   24,
			InStock:       true,
			Featured:      true,
		},
		{
			ID:          "prod-2",
			Name:        "Artisan Stoneware Vase",
			Description: "Elegant stoneware vase with organic textures and earth-toned finish. Ideal for fresh or dried flower arrangements.",
			Price:       domain.FromCents(6800),
			Image:       "/assets/products/artisan-stoneware-vase.jpg",
			Category:    "Pottery",
			Rating:      4.9,
			ReviewCount: 18,
			InStock:     true,
			Featured:    true,
		},
		{
			ID:          "prod-3",
			Name:        "Hand-Thrown Coffee Mug",
			Description: "Perfectly weighted coffee mug crafted on a potter's wheel. Features a comfortable handle and durable glaze.",
			Price:       domain.FromCents(2800),
			Image:       "/assets/products/hand-thrown-coffee-mug.jpg",
			Category:    "Pottery",
			Rating:      4.7,
			ReviewCount: 42,
			InStock:     true,
		},
		{
			ID:          "prod-4",
			Name:        "Raw Organic Wildflower Honey",
			Description: "Pure, unfiltered honey harvested from local wildflowers. Rich in antioxidants and natural enzymes. 16oz jar.",
			Price:       domain.FromCents(1800),
			Image:       "/assets/products/wildflower-honey.jpg",
			Category:    "Kitchen",
			Rating:      4.9,
			ReviewCount: 67,
			InStock:     true,
			Featured:    true,
		},
		{
			ID:            "prod-5",
			Name:          "Honey Gift Set with Dipper",
			Description:   "Three varieties of local honey paired with a handcrafted wooden dipper. Perfect gift for honey lovers.",
			Price:         domain.FromCents(4200),
			OriginalPrice: domain.FromCents(5000),
			Image:         "/assets/products/honey-gift-set.jpg",
			Category:      "Kitchen",
			Rating:        4.8,
			ReviewCount:   31,
			InStock:       true,
		},
		{
			ID:          "prod-6",
			Name:        "Lavender Soy Candle",
			Description: "Hand-poured soy candle infused with pure lavender essential oil. 8oz with 45+ hours of burn time.",
			Price:       domain.FromCents(2400),
			Image:       "/assets/products/lavender-soy-candle.jpg",
			Category:    "Candles",
			Rating:      4.6,
			ReviewCount: 53,
			InStock:     true,
			Featured:    true,
		},
		{
			ID:            "prod-7",
			Name:          "Cedar & Pine Candle Set",
			Description:   "Three-candle set featuring woodsy scents of cedar, pine, and eucalyptus. Perfect for creating a cozy atmosphere.",
			Price:         domain.FromCents(5600),
			OriginalPrice: domain.FromCents(6500),
			Image:         "/assets/products/cedar-pine-candle-set.jpg",
			Category:      "Candles",
			Rating:        4.7,
			ReviewCount:   28,
			InStock:       true,
		},
		{
			ID:          "prod-8",
			Name:        "Artisan Soap Collection",
			Description: "Set of 4 handmade soaps with natural ingredients: lavender, honey oat, charcoal, and rose. Each bar is 4oz.",
			Price:       domain.FromCents(3200),
			Image:       "/assets/products/artisan-soap-collection.jpg",
			Category:    "Bath & Body",
			Rating:      4.8,
			ReviewCount: 89,
			InStock:     true,
			Featured:    true,
		},
		{
			ID:          "prod-9",
			Name:        "Goat Milk Soap Bar",
			Description: "Creamy goat milk soap enriched with shea butter and oatmeal. Gentle enough for sensitive skin.",
			Price:       domain.FromCents(1200),
			Image:       "/assets/products/goat-milk-soap-bar.jpg",
			Category:    "Bath & Body",
			Rating:      4.9,
			ReviewCount: 45,
			InStock:     true,
		},
		{
			ID:          "prod-10",
			Name:        "Walnut Cutting Board",
			Description: "Solid walnut cutting board with juice groove. Hand-sanded and finished with food-safe mineral oil. 14x10 inches.",
			Price:       domain.FromCents(7500),
			Image:       "/assets/products/walnut-cutting-board.jpg",
			Category:    "Kitchen",
			Rating:      4.9,
			ReviewCount: 36,
			InStock:     true,
			Featured:    true,
		},
		{
			ID:            "prod-11",
			Name:          "Maple Serving Board",
			Description:   "Beautiful maple serving board with live edge detail. Perfect for charcuterie or bread. 18x8 inches.",
			Price:         domain.FromCents(5800),
			OriginalPrice: domain.FromCents(6800),
			Image:         "/assets/products/maple-serving-board.jpg",
			Category:      "Kitchen",
			Rating:        4.7,
			ReviewCount:   22,
			InStock:       true,
		},
		{
			ID:          "prod-12",
			Name:        "Woven Storage Basket",
			Description: "Hand-woven seagrass basket with cotton handles. Great for blankets, toys, or plants. 15x12 inches.",
			Price:       domain.FromCents(3800),
			Image:       "/assets/products/woven-storage-basket.jpg",
			Category:    "Home Decor",
			Rating:      4.6,
			ReviewCount: 54,
			InStock:     true,
			Featured:    true,
		},
		{
			ID:            "prod-13",
			Name:          "Macrame Wall Basket Set",
			Description:   "Set of 3 woven wall baskets in varying sizes. Adds texture and warmth to any room.",
			Price:         domain.FromCents(6500),
			OriginalPrice: domain.FromCents(7800),
			Image:         "/assets/products/macrame-wall-basket-set.jpg",
			Category:      "Home Decor",
			Rating:        4.8,
			ReviewCount:   19,
			InStock:       true,
		},
	}
}

// SeedReviews returns the historical reviews shipped with the catalog.
func SeedReviews() []*domain.Review {
	return []*domain.Review{
		{
			ID:           "rev-1",
			ProductID:    "prod-1",
			ReviewerName: "Sarah M.",
			Rating:       5,
			Comment:      "Absolutely beautiful bowls! They look even better in person. The glaze is stunning and they're perfect for everyday use.",
			Verified:     true,
			Helpful:      12,
			CreatedAt:    time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "rev-2",
			ProductID:    "prod-1",
			ReviewerName: "James K.",
			Rating:       5,
			Comment:      "Great quality and very unique. Each bowl is slightly different which adds to the charm. Highly recommend!",
			Verified:     true,
			Helpful:      8,
			CreatedAt:    time.Date(2024, 10, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "rev-3",
			ProductID:    "prod-4",
			ReviewerName: "Emily R.",
			Rating:       5,
			Comment:      "Best honey I've ever tasted! You can really taste the difference with local, raw honey. Will definitely be ordering more.",
			Verified:     true,
			Helpful:      15,
			CreatedAt:    time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "rev-4",
			ProductID:    "prod-6",
			ReviewerName: "Michael T.",
			Rating:       4,
			Comment:      "Love the lavender scent - not too overpowering. Burns clean and lasts a long time. Only wish it was a bit stronger.",
			Verified:     true,
			Helpful:      6,
			CreatedAt:    time.Date(2024, 11, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "rev-5",
			ProductID:    "prod-8",
			ReviewerName: "Lisa H.",
			Rating:       5,
			Comment:      "These soaps are amazing! My skin has never felt better. The honey oat is my favorite. No artificial fragrances.",
			Verified:     true,
			Helpful:      20,
			CreatedAt:    time.Date(2024, 11, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "rev-6",
			ProductID:    "prod-10",
			ReviewerName: "David W.",
			Rating:       5,
			Comment:      "Gorgeous cutting board! The walnut grain is beautiful and it's very sturdy. A bit heavy but that's a good thing.",
			Verified:     true,
			Helpful:      9,
			CreatedAt:    time.Date(2024, 11, 12, 0, 0, 0, 0, time.UTC),
		},
	}
}
