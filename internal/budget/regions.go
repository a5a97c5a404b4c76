package budget

// RegionPrice holds the minimum rational price per meal for each
// lifestyle tier in one region, in rupiah.
type RegionPrice struct {
	Province  string
	Sederhana float64
	Normal    float64
	Mewah     float64
}

// ForLifestyle returns the tier price. Lifestyle is a closed enum, so
// the lookup cannot miss; unknown values take the Normal tier.
func (r RegionPrice) ForLifestyle(ls Lifestyle) float64 {
	switch ls {
	case LifestyleSederhana:
		return r.Sederhana
	case LifestyleMewah:
		return r.Mewah
	default:
		return r.Normal
	}
}

// RegionPriceTable maps region names to their baseline meal prices.
// Read-only reference data, loaded once at process start.
type RegionPriceTable struct {
	Regions map[string]RegionPrice
	Default RegionPrice
}

// MinRationalPrice looks up the minimum rational price per meal for a
// city and lifestyle. Unknown cities fall back to the default row and
// never fail.
func (t RegionPriceTable) MinRationalPrice(city string, ls Lifestyle) float64 {
	if r, ok := t.Regions[city]; ok {
		return r.ForLifestyle(ls)
	}
	return t.Default.ForLifestyle(ls)
}

// RegionNames lists every region in the table, for dropdowns and the
// correction surface.
func (t RegionPriceTable) RegionNames() []string {
	names := make([]string, 0, len(t.Regions))
	for name := range t.Regions {
		names = append(names, name)
	}
	return names
}

// DefaultTable returns the built-in Indonesian region price table.
// Prices approximate the cost of one rational home-cooked meal per
// person in late 2025, keyed by official city/regency names.
func DefaultTable() RegionPriceTable {
	return RegionPriceTable{
		Default: RegionPrice{Province: "", Sederhana: 4000, Normal: 6000, Mewah: 10000},
		Regions: map[string]RegionPrice{
			"Kota Administrasi Jakarta Selatan": {Province: "DKI Jakarta", Sederhana: 6000, Normal: 8000, Mewah: 14000},
			"Kota Administrasi Jakarta Pusat":   {Province: "DKI Jakarta", Sederhana: 6000, Normal: 8000, Mewah: 14000},
			"Kota Administrasi Jakarta Barat":   {Province: "DKI Jakarta", Sederhana: 5500, Normal: 7500, Mewah: 13000},
			"Kota Administrasi Jakarta Timur":   {Province: "DKI Jakarta", Sederhana: 5500, Normal: 7500, Mewah: 13000},
			"Kota Administrasi Jakarta Utara":   {Province: "DKI Jakarta", Sederhana: 5500, Normal: 7500, Mewah: 13000},
			"Kota Bandung":                      {Province: "Jawa Barat", Sederhana: 5000, Normal: 7000, Mewah: 12000},
			"Kota Bekasi":                       {Province: "Jawa Barat", Sederhana: 5000, Normal: 7000, Mewah: 12000},
			"Kota Depok":                        {Province: "Jawa Barat", Sederhana: 5000, Normal: 7000, Mewah: 12000},
			"Kota Bogor":                        {Province: "Jawa Barat", Sederhana: 4800, Normal: 6800, Mewah: 11500},
			"Kota Surabaya":                     {Province: "Jawa Timur", Sederhana: 5000, Normal: 7000, Mewah: 12000},
			"Kota Malang":                       {Province: "Jawa Timur", Sederhana: 4200, Normal: 6000, Mewah: 10000},
			"Kota Semarang":                     {Province: "Jawa Tengah", Sederhana: 4500, Normal: 6500, Mewah: 11000},
			"Kota Surakarta":                    {Province: "Jawa Tengah", Sederhana: 4000, Normal: 5500, Mewah: 9500},
			"Kota Yogyakarta":                   {Province: "DI Yogyakarta", Sederhana: 4000, Normal: 5500, Mewah: 9500},
			"Kota Medan":                        {Province: "Sumatera Utara", Sederhana: 4800, Normal: 6800, Mewah: 11500},
			"Kota Palembang":                    {Province: "Sumatera Selatan", Sederhana: 4500, Normal: 6500, Mewah: 11000},
			"Kota Pekanbaru":                    {Province: "Riau", Sederhana: 5000, Normal: 7000, Mewah: 12000},
			"Kota Padang":                       {Province: "Sumatera Barat", Sederhana: 4500, Normal: 6500, Mewah: 11000},
			"Kota Makassar":                     {Province: "Sulawesi Selatan", Sederhana: 4800, Normal: 6800, Mewah: 11500},
			"Kota Manado":                       {Province: "Sulawesi Utara", Sederhana: 5000, Normal: 7000, Mewah: 12000},
			"Kota Denpasar":                     {Province: "Bali", Sederhana: 5500, Normal: 7500, Mewah: 13000},
			"Kota Balikpapan":                   {Province: "Kalimantan Timur", Sederhana: 5500, Normal: 7500, Mewah: 13000},
			"Kota Pontianak":                    {Province: "Kalimantan Barat", Sederhana: 4800, Normal: 6800, Mewah: 11500},
			"Kota Banjarmasin":                  {Province: "Kalimantan Selatan", Sederhana: 4800, Normal: 6800, Mewah: 11500},
			"Kota Jayapura":                     {Province: "Papua", Sederhana: 7000, Normal: 9500, Mewah: 16000},
			"Kota Ambon":                        {Province: "Maluku", Sederhana: 6000, Normal: 8500, Mewah: 14000},
			"Kota Mataram":                      {Province: "Nusa Tenggara Barat", Sederhana: 4200, Normal: 6000, Mewah: 10000},
			"Kota Kupang":                       {Province: "Nusa Tenggara Timur", Sederhana: 5000, Normal: 7000, Mewah: 12000},
			"Kota Banda Aceh":                   {Province: "Aceh", Sederhana: 4500, Normal: 6500, Mewah: 11000},
			"Kota Bandar Lampung":               {Province: "Lampung", Sederhana: 4200, Normal: 6000, Mewah: 10000},
		},
	}
}
